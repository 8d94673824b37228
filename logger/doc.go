// Package logger provides structured logging for seqkit using zerolog.
//
// The engine itself is silent on the hot path; only pool bookkeeping
// (leaked or doubly-returned buffers), builder chunk growth at debug level,
// configuration loading and engine setup emit records.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("pool")
//	log.Warn("buffer leaked", logger.Fields("capacity", 64))
package logger
