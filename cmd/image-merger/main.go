package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/anthonynsimon/bild/imgio"

	"github.com/gerardcastell/Image-merger/internal/imaging"
	"github.com/gerardcastell/Image-merger/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Configure logging to stderr (stdout is for serve protocol output)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "--version", "-v", "version":
		fmt.Printf("image-merger %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
	case "--help", "-h", "help":
		printUsage()
	case "merge":
		if err := runMerge(os.Args[2:]); err != nil {
			log.Fatalf("merge failed: %v", err)
		}
	case "serve":
		if logLevel := os.Getenv("IMAGE_MERGER_LOG_LEVEL"); logLevel == "debug" {
			log.Printf("Image merger v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		}
		srv := server.New()
		if err := srv.Run(); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(2)
	}
}

func printUsage() {
	fmt.Println("image-merger - merge two images into one")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  image-merger merge -orientation <horizontal|vertical> [-out <path>] <first> <second>")
	fmt.Println("  image-merger serve")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  merge    Merge two image files and write the combined JPEG")
	fmt.Println("  serve    Run the stdio JSON-RPC merge service")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  IMAGE_MERGER_LOG_LEVEL=debug    Enable debug logging for serve")
}

// runMerge handles the file-based merge command.
func runMerge(args []string) error {
	fs := flag.NewFlagSet("merge", flag.ExitOnError)
	orientationFlag := fs.String("orientation", "vertical", "concatenation axis: horizontal or vertical")
	outFlag := fs.String("out", "merged.jpg", "output JPEG path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() != 2 {
		return fmt.Errorf("expected exactly two input images, got %d", fs.NArg())
	}

	orientation, err := imaging.ParseOrientation(*orientationFlag)
	if err != nil {
		return err
	}

	first, err := imgio.Open(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", fs.Arg(0), err)
	}
	second, err := imgio.Open(fs.Arg(1))
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", fs.Arg(1), err)
	}

	merged, err := imaging.Merge(first, second, orientation)
	if err != nil {
		return err
	}

	if err := imgio.Save(*outFlag, merged, imgio.JPEGEncoder(imaging.JPEGQuality)); err != nil {
		return fmt.Errorf("failed to write %s: %w", *outFlag, err)
	}

	b := merged.Bounds()
	log.Printf("wrote %s (%dx%d)", *outFlag, b.Dx(), b.Dy())
	return nil
}
