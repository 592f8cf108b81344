package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	dgt1ha "github.com/dgryski/go-t1ha"
	cpuid "github.com/klauspost/cpuid/v2"
	blake2b "github.com/minio/blake2b-simd"
	"github.com/minio/highwayhash"
	sha256 "github.com/minio/sha256-simd"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/blake3"
	"github.com/zeebo/wyhash"
	"github.com/zeebo/xxh3"

	"github.com/dibu28/hashmem"
)

func main() {
	sizes := flag.String("sizes", "16,64,1024,65536,1048576", "comma-separated buffer sizes in bytes")
	mb := flag.Int("mb", 256, "megabytes to hash per algorithm and size")
	flag.Parse()

	ns, err := parseSizes(*sizes)
	if err != nil {
		log.Fatal(err)
	}

	printCPU()

	for _, n := range ns {
		buf := make([]byte, n)
		for i := range buf {
			buf[i] = byte(i)
		}
		iters := *mb * (1 << 20) / n
		if iters < 1 {
			iters = 1
		}
		fmt.Printf("\n%d-byte buffers, %d iterations\n", n, iters)
		for _, a := range algorithms() {
			start := time.Now()
			for i := 0; i < iters; i++ {
				a.fn(buf)
			}
			secs := time.Since(start).Seconds()
			fmt.Printf("  %-14s %9.1f MB/s\n", a.name, float64(iters)*float64(n)/secs/(1<<20))
		}
	}
}

func parseSizes(s string) ([]int, error) {
	var ns []int
	for _, f := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("bad size %q", f)
		}
		ns = append(ns, n)
	}
	return ns, nil
}

type algorithm struct {
	name string
	fn   func([]byte)
}

// Sinks keep the compiler from eliding the hash calls.
var (
	sinkWord uintptr
	sink64   uint64
	sinkByte byte
)

func algorithms() []algorithm {
	hwKey := make([]byte, 32)
	sha := sha256.New()
	b2 := blake2b.New256()
	b3 := blake3.New()
	out := make([]byte, 0, 64)

	return []algorithm{
		{"fnv1a-word", func(p []byte) { sinkWord = hashmem.Sum(p) }},
		{"xxhash64", func(p []byte) { sink64 = xxhash.Sum64(p) }},
		{"xxh3", func(p []byte) { sink64 = xxh3.Hash(p) }},
		{"wyhash", func(p []byte) { sink64 = wyhash.Hash(p, 0) }},
		{"t1ha1", func(p []byte) { sink64 = dgt1ha.Sum64(p, 0) }},
		{"murmur3-64", func(p []byte) { sink64 = murmur3.Sum64(p) }},
		{"highwayhash", func(p []byte) { sink64 = highwayhash.Sum64(p, hwKey) }},
		{"blake3-256", func(p []byte) {
			b3.Reset()
			b3.Write(p)
			out = b3.Sum(out[:0])
			sinkByte = out[0]
		}},
		{"blake2b-256", func(p []byte) {
			b2.Reset()
			b2.Write(p)
			out = b2.Sum(out[:0])
			sinkByte = out[0]
		}},
		{"sha256-simd", func(p []byte) {
			sha.Reset()
			sha.Write(p)
			out = sha.Sum(out[:0])
			sinkByte = out[0]
		}},
	}
}

func printCPU() {
	// On ARM64 some features require explicit detection
	if runtime.GOARCH == "arm64" {
		cpuid.DetectARM()
	}

	fmt.Printf("cpu: %s, %d logical cores\n", cpuid.CPU.BrandName, cpuid.CPU.LogicalCores)
	switch runtime.GOARCH {
	case "amd64", "386":
		fmt.Printf("features: sse2=%v ssse3=%v sse4=%v avx2=%v sha=%v\n",
			cpuid.CPU.Supports(cpuid.SSE2), cpuid.CPU.Supports(cpuid.SSSE3),
			cpuid.CPU.Supports(cpuid.SSE4), cpuid.CPU.Supports(cpuid.AVX2),
			cpuid.CPU.Supports(cpuid.SHA))
	case "arm64":
		fmt.Printf("features: asimd=%v aes=%v sha2=%v crc32=%v\n",
			cpuid.CPU.Supports(cpuid.ASIMD), cpuid.CPU.Supports(cpuid.AESARM),
			cpuid.CPU.Supports(cpuid.SHA2), cpuid.CPU.Supports(cpuid.CRC32))
	}
}
