//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binary  = "kotrans"
	pkg     = "./cmd/kotrans"
	verPath = "codeberg.org/snonux/kotrans/internal.Version"
)

// Default target to run when none is specified
var Default = Build

// Build compiles the kotrans binary
func Build() error {
	version := os.Getenv("VERSION")
	ldflags := ""
	if version != "" {
		ldflags = fmt.Sprintf("-X %s=%s", verPath, version)
	}
	return sh.RunV("go", "build", "-ldflags", ldflags, "-o", binary, pkg)
}

// Install installs the binary into GOPATH/bin
func Install() error {
	return sh.RunV("go", "install", pkg)
}

// Test runs all unit tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Integration runs tests that talk to real translation services
func Integration() error {
	env := map[string]string{"KOTRANS_NETWORK_TESTS": "1"}
	return sh.RunWithV(env, "go", "test", "-run", "Integration", "./...")
}

// Vet runs go vet
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Check runs vet and tests
func Check() {
	mg.SerialDeps(Vet, Test)
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm(binary)
}
