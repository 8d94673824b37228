// Package config loads the seqkit engine configuration.
//
// It uses Viper to read a YAML file, loads a .env file with godotenv, and
// lets SEQKIT_-prefixed environment variables override file values.
//
// # Usage
//
//	cfg, err := config.Load("my-service")
//	if err != nil {
//	    return err
//	}
//
// Files are searched under ./cmd/<service>/, ./config/ and the working
// directory unless WithConfigFile or WithEnvFile name them explicitly.
package config
