// Package mmregion hands out anonymous read-write memory regions for
// exercising allocators in hosted environments, where no boot-time memory
// map exists. On unix platforms regions come from mmap so their bases are
// page-aligned; elsewhere a heap-backed slice stands in.
//
// This package is a test and tooling convenience. It is not a physical
// memory discovery mechanism and nothing in the allocator core depends
// on it.
package mmregion
