// Package version reports the seqkit build.
//
// Version and GitCommit are set at link time:
//
//	go build -ldflags "-X github.com/kbukum/seqkit/version.Version=1.0.0"
//
// Without ldflags the commit comes from the embedded VCS build settings.
package version
