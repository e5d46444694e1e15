// Package config provides configuration parsing for autoform projects.
//
// The configuration is stored in autoform.json at the project root.
// This package handles loading, saving, and validating configuration.
//
// # Configuration File Structure
//
//	{
//	  "fields": {
//	    "defaults": {"text": "textarea"}
//	  },
//	  "groups": {"default": "fieldset"},
//	  "root": "form",
//	  "server": {
//	    "host": "localhost",
//	    "port": 8080,
//	    "forms": "forms"
//	  },
//	  "render": {"pretty": true, "indent": "  "},
//	  "metrics": {"enabled": true, "namespace": "autoform"},
//	  "storage": {
//	    "s3": {"bucket": "my-forms", "prefix": "prod", "region": "eu-west-1"}
//	  }
//	}
//
// Keys missing from the file keep the values set by New.
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Listening on", cfg.Address())
package config
