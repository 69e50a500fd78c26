///usr/bin/true; exec /usr/bin/env go run "$0" "$@"

// crossbuild builds cmd/rawio for every architecture with a syscall table.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/pflag"
)

// supportedArchs are the GOARCH values with a kernel backend.
var supportedArchs = []string{"386", "amd64", "arm64"}

type crossBuild struct {
	GOOS   string
	GOARCH string
}

func (cb crossBuild) IsNative() bool {
	return cb.GOOS == runtime.GOOS && cb.GOARCH == runtime.GOARCH
}

func (cb crossBuild) OutputName(name string) string {
	if cb.IsNative() {
		return name
	}
	return fmt.Sprintf("%s_%s_%s", name, cb.GOOS, cb.GOARCH)
}

type buildOptions struct {
	Package    string
	OutputName string
	OutputDir  string
	Version    string
	Build      crossBuild
}

// command returns the go build invocation and the environment it runs in.
func (opts buildOptions) command() (args []string, env []string, output string) {
	output = filepath.Join(opts.OutputDir, opts.Build.OutputName(opts.OutputName))

	env = append(env, "GOOS="+opts.Build.GOOS)
	env = append(env, "GOARCH="+opts.Build.GOARCH)
	env = append(env, "CGO_ENABLED=0")

	args = append(args, "go", "build", "-trimpath")
	args = append(args, "-ldflags", "-s -w -X main.version="+opts.Version)
	args = append(args, "-o", output)
	args = append(args, opts.Package)
	return args, env, output
}

func goBuild(opts buildOptions, logger *slog.Logger) (string, error) {
	args, env, output := opts.command()
	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return "", fmt.Errorf("failed to create build directory: %w", err)
	}

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Env = append(os.Environ(), env...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	logger.Debug("go build", "args", strings.Join(args[1:], " "), "env", strings.Join(env, " "))
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("go build %s/%s failed: %w", opts.Build.GOOS, opts.Build.GOARCH, err)
	}
	return output, nil
}

// plan expands the requested architectures into build options. An empty
// list means every supported architecture.
func plan(archs []string, outputDir, version string) ([]buildOptions, error) {
	if len(archs) == 0 {
		archs = supportedArchs
	}

	var builds []buildOptions
	seen := make(map[string]bool)
	for _, arch := range archs {
		if !isSupported(arch) {
			return nil, fmt.Errorf("unsupported architecture %q (have %s)", arch, strings.Join(supportedArchs, ", "))
		}
		if seen[arch] {
			continue
		}
		seen[arch] = true
		builds = append(builds, buildOptions{
			Package:    "./cmd/rawio",
			OutputName: "rawio",
			OutputDir:  outputDir,
			Version:    version,
			Build:      crossBuild{GOOS: "linux", GOARCH: arch},
		})
	}
	return builds, nil
}

func isSupported(arch string) bool {
	for _, supported := range supportedArchs {
		if arch == supported {
			return true
		}
	}
	return false
}

func getVersionFromGit() string {
	if ref := os.Getenv("GITHUB_REF_NAME"); ref != "" && strings.HasPrefix(ref, "v") {
		return ref
	}

	out, err := exec.Command("git", "describe", "--tags", "--always").Output()
	if err == nil {
		if version := strings.TrimSpace(string(out)); version != "" {
			return version
		}
	}
	return "dev"
}

func main() {
	var (
		archs     []string
		outputDir string
		version   string
		dryRun    bool
		verbose   bool
	)
	pflag.StringSliceVar(&archs, "arch", nil, "architectures to build (default: "+strings.Join(supportedArchs, ",")+")")
	pflag.StringVarP(&outputDir, "output", "o", "build", "output directory")
	pflag.StringVar(&version, "version", "", "version stamped into the binary (default: git describe)")
	pflag.BoolVar(&dryRun, "dry-run", false, "print the commands without running them")
	pflag.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	pflag.Parse()

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if version == "" {
		version = getVersionFromGit()
	}

	builds, err := plan(archs, outputDir, version)
	if err != nil {
		logger.Error("invalid build request", "error", err)
		os.Exit(2)
	}

	for _, build := range builds {
		if dryRun {
			args, env, _ := build.command()
			fmt.Printf("%s %s\n", strings.Join(env, " "), strings.Join(args, " "))
			continue
		}
		output, err := goBuild(build, logger)
		if err != nil {
			logger.Error("build failed", "arch", build.Build.GOARCH, "error", err)
			os.Exit(1)
		}
		logger.Info("built", "path", output, "version", version)
	}
}
