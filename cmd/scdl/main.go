package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/alexflint/go-arg"
	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/scget/sc-downloader/internal/download"
	"github.com/scget/sc-downloader/internal/engine"
	"github.com/scget/sc-downloader/internal/logger"
	"github.com/scget/sc-downloader/internal/model"
	"github.com/scget/sc-downloader/internal/platform"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const DefaultDownloadSubdir = "SoundCloud"

// Args defines the command line interface
type Args struct {
	URLs     []string `arg:"positional,required" help:"playlist or track URLs to download"`
	Dir      string   `arg:"-d,--dir" help:"base download directory (default: ~/Downloads/SoundCloud)"`
	Format   string   `arg:"-f,--format" default:"mp3" help:"audio format: mp3, m4a, opus or flac"`
	Bitrate  string   `arg:"-b,--bitrate" default:"192k" help:"audio bitrate for conversion"`
	Parallel int      `arg:"-p,--parallel" default:"1" help:"playlists downloaded at the same time"`
	NoM3U    bool     `arg:"--no-m3u" help:"do not write a .m3u playlist file"`
	NoTags   bool     `arg:"--no-tags" help:"do not embed ID3 tags"`
	Quiet    bool     `arg:"-q,--quiet" help:"only print errors and the final summary"`
	Verbose  bool     `arg:"-v,--verbose" help:"enable debug logging"`
}

func (Args) Version() string {
	return "scdl v" + version
}

func main() {
	var args Args
	arg.MustParse(&args)

	if !isValidFormat(args.Format) {
		fmt.Fprintf(os.Stderr, "unsupported format %q (want mp3, m4a, opus or flac)\n", args.Format)
		os.Exit(1)
	}
	if args.Parallel < 1 {
		args.Parallel = 1
	}
	if args.Dir == "" {
		args.Dir = defaultBaseDir()
	}

	level := logger.WarnLevel
	if args.Verbose {
		level = logger.DebugLevel
	}
	logger.Init(logger.Config{Level: level})
	defer logger.Sync()

	if err := platform.CreateDirectoryIfNotExists(args.Dir); err != nil {
		fmt.Fprintf(os.Stderr, "cannot create download directory: %v\n", err)
		os.Exit(1)
	}

	// Handle interrupts: the first Ctrl+C lets running tracks finish, the
	// second aborts immediately.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	opts := download.Options{
		BaseDir:   args.Dir,
		Format:    args.Format,
		Bitrate:   args.Bitrate,
		WriteM3U:  !args.NoM3U,
		EmbedTags: !args.NoTags,
	}

	eng := engine.New()
	orchs := make([]*download.Orchestrator, len(args.URLs))
	for i, url := range args.URLs {
		orchs[i] = download.NewOrchestrator(eng, opts, cliEvents(url, len(args.URLs) > 1, args.Quiet))
	}

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, finishing the current track... (Ctrl+C again to abort)")
		for _, orch := range orchs {
			orch.Cancel()
		}
		<-sigCh
		fmt.Println("\nAborting.")
		cancel()
	}()

	var (
		mu        sync.Mutex
		cancelled bool
		failed    bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(args.Parallel)

	for i, url := range args.URLs {
		orch := orchs[i]
		url := url
		g.Go(func() error {
			job, err := orch.Run(gctx, url)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case errors.Is(err, model.ErrCancelled):
				cancelled = true
			case err != nil:
				failed = true
				fmt.Fprintf(os.Stderr, "%s: %v\n", url, err)
			default:
				if job.HasFailures() {
					failed = true
				}
				printSummary(job)
			}
			return nil
		})
	}

	_ = g.Wait()

	if cancelled {
		fmt.Println("Download cancelled.")
		os.Exit(130)
	}
	if failed {
		os.Exit(1)
	}
}

// cliEvents adapts orchestrator callbacks to plain line output. With more
// than one URL in flight the lines are prefixed so they stay attributable.
func cliEvents(url string, prefixed, quiet bool) download.Events {
	prefix := ""
	if prefixed {
		prefix = url + ": "
	}
	return download.Events{
		OnLog: func(line string) {
			if quiet {
				return
			}
			fmt.Println(prefix + line)
		},
	}
}

// printSummary reports one finished job including the bytes written to disk.
func printSummary(job *model.PlaylistJob) {
	var totalBytes int64
	for _, track := range job.Tracks {
		if track.Status == model.TrackStatusDone {
			totalBytes += track.FileSize
		}
	}

	fmt.Printf("%s: %d/%d tracks (%s) -> %s\n",
		job.Title, job.DoneCount(), job.TrackTotal(),
		humanize.Bytes(uint64(totalBytes)), job.DestDir)

	for _, track := range job.FailedTracks {
		fmt.Printf("  failed: %s (%s)\n", track.DisplayTitle(), track.Error)
	}
}

func isValidFormat(format string) bool {
	switch format {
	case "mp3", "m4a", "opus", "flac":
		return true
	}
	return false
}

// defaultBaseDir places downloads under the platform downloads folder.
func defaultBaseDir() string {
	home, err := platform.GetHomeDownloadsDir()
	if err != nil {
		return "downloads"
	}
	return filepath.Join(home, DefaultDownloadSubdir)
}
