// Package config provides configuration parsing for the tips server.
//
// The configuration is stored in tips.json next to the binary or in the
// directory passed with --dir. Every field is optional; missing values
// fall back to the defaults returned by New.
//
// # Configuration File Structure
//
//	{
//	  "name": "tips",
//	  "dev": false,
//	  "server": {
//	    "host": "localhost",
//	    "port": 8080,
//	    "shutdownTimeout": "10s"
//	  },
//	  "render": {
//	    "title": "Tips",
//	    "lang": "en",
//	    "pretty": false
//	  },
//	  "static": {
//	    "prefix": "/static/"
//	  },
//	  "log": {
//	    "level": "info",
//	    "format": "json"
//	  },
//	  "metrics": {
//	    "enabled": true,
//	    "namespace": "tips"
//	  },
//	  "tracing": {
//	    "enabled": false,
//	    "tracerName": "tips"
//	  },
//	  "export": {
//	    "dir": "dist",
//	    "s3": {
//	      "bucket": "my-bucket",
//	      "region": "us-east-1",
//	      "prefix": "tips/"
//	    }
//	  }
//	}
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
