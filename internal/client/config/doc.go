// Package config loads runtime configuration for the privachat terminal client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the chat server
//	-i int      online status check interval (seconds)
//	-l string   path of the local SQLite database
//	-e string   base directory for history exports
//	-n int      messages loaded when a conversation is opened
//
// # JSON schema
//
// Intervals use timex.Duration, so they may be strings like "3s" or integer
// nanoseconds. Missing keys keep their previous value:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "online_check_interval": "3s",
//	  "local_db_path": "privachat.db",
//	  "export_base_dir": "",
//	  "history_page_size": 50
//	}
package config
