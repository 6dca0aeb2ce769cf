// Package config loads, validates and watches lvwalk settings.
//
// Settings are read from YAML (gopkg.in/yaml.v3) over Default(), validated
// with go-playground/validator struct tags, and may be hot-reloaded with
// Watch, which uses fsnotify on the file's directory so editor rename-and-
// replace saves are seen too.
//
// Example file:
//
//	playback:
//	  algorithm: dfs
//	  delay: 500ms
//	graph:
//	  directed: true
//	classifier:
//	  endpoint: http://localhost:8000
//	  timeout: 5s
//	server:
//	  addr: ":8080"
//	log:
//	  level: debug
//	  format: json
package config
