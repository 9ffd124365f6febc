// genicons writes the placeholder extension icons (icon16.png, icon48.png,
// icon128.png) to the current directory, or to --dir.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/Mavwarf/genicons/internal/icon"
	"github.com/Mavwarf/genicons/internal/paths"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	args := os.Args[1:]
	dir := "."

	// Parse flags
	filtered := args[:0]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--dir", "-d":
			if i+1 < len(args) {
				dir = args[i+1]
				i++
			} else {
				fmt.Fprintf(os.Stderr, "Error: --dir requires a directory path\n")
				os.Exit(1)
			}
		default:
			filtered = append(filtered, args[i])
		}
	}

	if len(filtered) > 0 {
		switch filtered[0] {
		case "help", "-h", "--help":
			printUsage()
		case "version", "-V", "--version":
			printVersion()
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown argument %q\n", filtered[0])
			fmt.Fprintf(os.Stderr, "Run 'genicons help' for usage.\n")
			os.Exit(1)
		}
		return
	}

	if err := run(os.Stdout, dir, icon.Sizes); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run renders each size into dir in order and reports each file on out.
// The first failure aborts the remaining sizes.
func run(out io.Writer, dir string, sizes []int) error {
	for _, size := range sizes {
		name := outputPath(dir, size)
		if err := icon.Render(size, name); err != nil {
			return err
		}
		fmt.Fprintf(out, "Created %s\n", name)
	}
	return nil
}

// outputPath joins dir and the icon file name. The current directory is
// left implicit so the default run prints bare file names.
func outputPath(dir string, size int) string {
	name := paths.Filename(size)
	if dir == "" || dir == "." {
		return name
	}
	return filepath.Join(dir, name)
}

func printVersion() {
	fmt.Printf("genicons %s (%s) %s/%s\n", version, buildDate, runtime.GOOS, runtime.GOARCH)
}

func printUsage() {
	fmt.Printf("genicons %s - Generate placeholder extension icons\n", version)
	fmt.Println(`
Usage:
  genicons [options]

Options:
  --dir, -d <path>       Output directory (default: current directory)

Commands:
  version, -V             Show version and build date
  help, -h, --help       Show this help message

Output:
  icon16.png             Solid background
  icon48.png             Background with bordered shield rectangle
  icon128.png            Background with bordered shield rectangle`)
}
