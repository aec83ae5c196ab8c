// Package config loads and watches the plcalc run file (stars.yaml).
//
// Top-level types:
//   - Config{Output, Targets} - full tree parsed from YAML
//   - OutputConfig - format (text|yaml|prom), verbose
//   - Target - name, period (days), band (V|J|H|K), mag and ebv as
//     uncertain values written "15.0+/-0.1", "15.0±0.1" or "15.02(12)"
//
// Load(path) reads the file, applies defaults (text format, verbose), then
// validates every target. A magnitude or reddening given as a bare number
// fails: both must carry an uncertainty.
//
// Watch(ctx, path, onChange) uses fsnotify to reload the file on write or
// create and calls onChange with the new Config. A reload that fails keeps
// the previous config.
package config
