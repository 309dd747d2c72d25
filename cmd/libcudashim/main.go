package main

import (
	_ "github.com/nocuda/cudashim/internal/api"
)

// Build with -buildmode=c-shared to produce the interposable shared object:
//
//	go build -buildmode=c-shared -o libcudashim.so ./cmd/libcudashim
//
// The exported cudaMallocHost/cudaFreeHost symbols live in internal/api;
// main exists only because c-shared requires a main package.
func main() {}
