package main

import (
	"path/filepath"
	"runtime"
	"slices"
	"testing"
)

func TestOutputName(t *testing.T) {
	native := crossBuild{GOOS: runtime.GOOS, GOARCH: runtime.GOARCH}
	if got := native.OutputName("rawio"); got != "rawio" {
		t.Errorf("native OutputName = %q", got)
	}

	other := crossBuild{GOOS: "linux", GOARCH: "386"}
	if runtime.GOOS == "linux" && runtime.GOARCH == "386" {
		other.GOARCH = "arm64"
	}
	want := "rawio_linux_" + other.GOARCH
	if got := other.OutputName("rawio"); got != want {
		t.Errorf("cross OutputName = %q, want %q", got, want)
	}
}

func TestPlan(t *testing.T) {
	builds, err := plan(nil, "out", "v1.2.3")
	if err != nil {
		t.Fatal(err)
	}
	if len(builds) != len(supportedArchs) {
		t.Fatalf("got %d builds, want %d", len(builds), len(supportedArchs))
	}
	for i, build := range builds {
		if build.Build.GOOS != "linux" || build.Build.GOARCH != supportedArchs[i] {
			t.Errorf("build %d targets %s/%s", i, build.Build.GOOS, build.Build.GOARCH)
		}
	}

	builds, err = plan([]string{"arm64", "arm64"}, "out", "dev")
	if err != nil {
		t.Fatal(err)
	}
	if len(builds) != 1 {
		t.Errorf("duplicate architectures should collapse, got %d builds", len(builds))
	}

	if _, err := plan([]string{"riscv64"}, "out", "dev"); err == nil {
		t.Error("expected an error for riscv64")
	}
}

func TestCommand(t *testing.T) {
	opts := buildOptions{
		Package:    "./cmd/rawio",
		OutputName: "rawio",
		OutputDir:  "out",
		Version:    "v0.1.0",
		Build:      crossBuild{GOOS: "linux", GOARCH: "arm64"},
	}
	args, env, output := opts.command()

	wantOutput := filepath.Join("out", opts.Build.OutputName("rawio"))
	if output != wantOutput {
		t.Errorf("output = %q, want %q", output, wantOutput)
	}
	for _, want := range []string{"GOOS=linux", "GOARCH=arm64", "CGO_ENABLED=0"} {
		if !slices.Contains(env, want) {
			t.Errorf("env %v lacks %s", env, want)
		}
	}
	if !slices.Contains(args, "-s -w -X main.version=v0.1.0") {
		t.Errorf("args %v do not stamp the version", args)
	}
	if args[len(args)-1] != "./cmd/rawio" {
		t.Errorf("package should come last: %v", args)
	}
}
