package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/rifftree/avireader/avi"
)

// OutputFormat selects how analyzeFile renders its result.
type OutputFormat string

const (
	OutputJSON OutputFormat = "json"
	OutputText OutputFormat = "text"
)

// Config holds CLI configuration, in the same shape the teacher's
// avixer tool uses for its own flag parsing.
type Config struct {
	InputFile    string
	OutputFormat OutputFormat
	ShowStreams  bool
}

// StreamInfo is one stream's descriptor rendered for JSON output.
type StreamInfo struct {
	Index      int    `json:"index"`
	Type       string `json:"type"`
	Width      int32  `json:"width,omitempty"`
	Height     int32  `json:"height,omitempty"`
	Channels   uint16 `json:"channels,omitempty"`
	SampleRate uint32 `json:"sample_rate,omitempty"`
	ChunkCount int    `json:"chunk_count"`
}

// FileOutput is the complete file summary rendered for JSON output.
type FileOutput struct {
	TotalFrames uint32       `json:"total_frames"`
	Width       int32        `json:"width"`
	Height      int32        `json:"height"`
	RecordLists int          `json:"record_lists"`
	Streams     []StreamInfo `json:"streams,omitempty"`
}

func main() {
	config := parseFlags()

	if config.InputFile == "" {
		fmt.Fprintf(os.Stderr, "Error: input file is required\n")
		flag.Usage()
		os.Exit(1)
	}

	if err := analyzeFile(config); err != nil {
		log.Fatalf("Error analyzing file: %v", err)
	}
}

func parseFlags() Config {
	var config Config
	var format string

	flag.StringVar(&config.InputFile, "i", "", "Input AVI file")
	flag.StringVar(&format, "f", "text", "Output format (json, text)")
	flag.BoolVar(&config.ShowStreams, "show-streams", true, "Show stream information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s -i input.avi [options]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	switch strings.ToLower(format) {
	case "json":
		config.OutputFormat = OutputJSON
	case "text":
		config.OutputFormat = OutputText
	default:
		log.Fatalf("Error: unsupported output format %q", format)
	}

	return config
}

func analyzeFile(config Config) error {
	f, err := os.Open(config.InputFile)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat: %w", err)
	}

	reader, err := avi.ReadHeader(&fileSource{f: f, size: info.Size()})
	if err != nil {
		return fmt.Errorf("read header: %w", err)
	}

	switch config.OutputFormat {
	case OutputJSON:
		out := buildOutput(reader, config)
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "    ")
		return encoder.Encode(out)
	default:
		printText(reader, config)
		return nil
	}
}

func buildOutput(r *avi.Reader, config Config) FileOutput {
	h := r.Header()
	out := FileOutput{
		TotalFrames: h.Main.TotalFrames,
		Width:       h.Main.Width,
		Height:      h.Main.Height,
		RecordLists: len(r.RecordLists()),
	}

	if !config.ShowStreams {
		return out
	}

	for _, s := range r.Streams() {
		si := StreamInfo{Index: s.Index, ChunkCount: len(s.Chunks)}
		switch s.Format.Kind {
		case avi.StreamFormatVideo:
			si.Type = "video"
			si.Width = s.Format.Video.Width
			si.Height = s.Format.Video.Height
		case avi.StreamFormatAudio:
			si.Type = "audio"
			si.Channels = s.Format.Audio.Channels
			si.SampleRate = s.Format.Audio.SamplesPerSec
		}
		out.Streams = append(out.Streams, si)
	}
	return out
}

// printText renders the reader's own String() methods directly, rather
// than reformatting the JSON-shaped FileOutput.
func printText(r *avi.Reader, config Config) {
	fmt.Println(r.Header())
	fmt.Printf("Record lists: %d\n", len(r.RecordLists()))
	if !config.ShowStreams {
		return
	}
	fmt.Println("Streams:")
	for _, s := range r.Streams() {
		fmt.Printf("  %s\n", s)
	}
}

// fileSource adapts an *os.File to riff.Source / avi's expectations.
type fileSource struct {
	f    *os.File
	size int64
}

func (s *fileSource) ReadAt(p []byte, off int64) (int, error) {
	return s.f.ReadAt(p, off)
}

func (s *fileSource) Len() int64 {
	return s.size
}
