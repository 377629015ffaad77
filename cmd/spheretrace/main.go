// spheretrace renders scenes of diffuse spheres.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/pprof"
	"strconv"
	"strings"

	"spheretrace/camera"
	"spheretrace/output"
	"spheretrace/render"
	"spheretrace/sampleimage"
	"spheretrace/scenes"
	"spheretrace/vmath/vec3"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var cmdRoot = &cobra.Command{
	Use:          "spheretrace",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// glog complains unless the standard flag set has been parsed.  Cobra
		// has already filled in its values.
		flag.CommandLine.Parse(nil)
	},
}

var (
	outputFile string
	format     string
	gamma      float64
)

func init() {
	cmdRoot.PersistentFlags().StringVar(&outputFile, "output", "image.ppm", "Image file to write")
	cmdRoot.PersistentFlags().StringVar(&format, "format", "", "Image format, ppm or png (default: from the output file extension)")
	cmdRoot.PersistentFlags().Float64Var(&gamma, "gamma", 2, "Gamma applied when developing the image")
}

var (
	width           int
	height          int
	aspect          float64
	samplesPerPixel int
	maxDepth        int
	workers         int
	rowsPerChunk    int
	seed            int64
	sceneName       string
	lookFrom        string
	lookAt          string
	vfov            float64
	checkpointFile  string
	resume          bool
	cpuProfile      string
)

func init() {
	defaults := render.DefaultOptions()

	cmdRender.Flags().IntVar(&width, "width", 400, "Output image columns")
	cmdRender.Flags().IntVar(&height, "height", 0, "Output image rows (default: width / aspect)")
	cmdRender.Flags().Float64Var(&aspect, "aspect", 16.0/9.0, "Aspect ratio used when --height is not set")
	cmdRender.Flags().IntVar(&samplesPerPixel, "samples-per-pixel", defaults.TargetSamples, "Number of samples to collect for each pixel")
	cmdRender.Flags().IntVar(&maxDepth, "max-depth", defaults.MaxDepth, "Maximum number of bounces to consider")
	cmdRender.Flags().IntVar(&workers, "workers", defaults.Workers, "Number of row chunks to render at once")
	cmdRender.Flags().IntVar(&rowsPerChunk, "rows-per-chunk", defaults.RowsPerChunk, "Rows in each unit of work")
	cmdRender.Flags().Int64Var(&seed, "seed", 1, "Seed for scene layout and sampling")
	cmdRender.Flags().StringVar(&sceneName, "scene", "single", fmt.Sprintf("Built-in scene to render, one of %v", scenes.Names()))
	cmdRender.Flags().StringVar(&lookFrom, "look-from", "", "Camera position as x,y,z (default: the origin looking down -z)")
	cmdRender.Flags().StringVar(&lookAt, "look-at", "0,0,-1", "Camera target as x,y,z")
	cmdRender.Flags().Float64Var(&vfov, "vfov", 90, "Vertical field of view in degrees, used with --look-from")
	cmdRender.Flags().StringVar(&checkpointFile, "checkpoint", "", "Sample file to save so the render can be resumed")
	cmdRender.Flags().BoolVar(&resume, "resume", false, "Re-open the checkpoint to add more samples")
	cmdRender.Flags().StringVar(&cpuProfile, "cpu-profile", "", "Write a CPU profile to this file")
}

func parseVec(s string) (vec3.T, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return vec3.T{}, fmt.Errorf("want three comma-separated numbers, got %q", s)
	}
	v := vec3.T{}
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return vec3.T{}, fmt.Errorf("while parsing component %d of %q: %w", i, s, err)
		}
		v[i] = f
	}
	return v, nil
}

// outputFormat resolves --format, falling back to the output file extension.
func outputFormat() (output.Format, error) {
	if format != "" {
		return output.ParseFormat(format)
	}
	if strings.EqualFold(filepath.Ext(outputFile), ".png") {
		return output.FormatPNG, nil
	}
	return output.FormatPPM, nil
}

func writeImage(im *sampleimage.SampleImage, imgFormat output.Format) error {
	f, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("while creating output file: %w", err)
	}

	if err := output.Write(f, im, imgFormat, gamma); err != nil {
		f.Close()
		return fmt.Errorf("while writing image: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("while closing output file: %w", err)
	}

	glog.Infof("Wrote %dx%d image to %s", im.ColSize, im.RowSize, outputFile)
	return nil
}

func progressReporter() render.ProgressFunction {
	if term.IsTerminal(int(os.Stderr.Fd())) {
		return func(cur, tot int) {
			if tot == 0 {
				return
			}
			fmt.Fprintf(os.Stderr, "\r%d/%d %d%%", cur, tot, 100*cur/tot)
		}
	}

	lastDecile := -1
	return func(cur, tot int) {
		if tot == 0 {
			return
		}
		if decile := 10 * cur / tot; decile != lastDecile {
			lastDecile = decile
			glog.Infof("Rendered %d/%d samples (%d%%)", cur, tot, 100*cur/tot)
		}
	}
}

func loadSampleImage(rows, cols int) (*sampleimage.SampleImage, error) {
	if checkpointFile == "" {
		if resume {
			return nil, fmt.Errorf("--resume requires --checkpoint")
		}
		return sampleimage.New(rows, cols), nil
	}

	if !resume {
		// Refuse to blow away hours of render time.
		if _, err := os.Stat(checkpointFile); err == nil {
			return nil, fmt.Errorf("resumption not requested, but checkpoint file %s exists", checkpointFile)
		}
		return sampleimage.New(rows, cols), nil
	}

	im, err := sampleimage.ReadFile(checkpointFile)
	if err != nil {
		return nil, fmt.Errorf("resumption requested, but encountered error loading existing checkpoint: %w", err)
	}
	if im.RowSize != rows {
		return nil, fmt.Errorf("resumption requested, but the existing checkpoint doesn't have the right number of rows (got %d, want %d)", im.RowSize, rows)
	}
	if im.ColSize != cols {
		return nil, fmt.Errorf("resumption requested, but the existing checkpoint doesn't have the right number of columns (got %d, want %d)", im.ColSize, cols)
	}
	if im.TotalSamples() > 0 && im.MaxDepth != maxDepth {
		return nil, fmt.Errorf("resumption requested, but the existing checkpoint was rendered with a different max depth (got %d, want %d)", im.MaxDepth, maxDepth)
	}
	return im, nil
}

var cmdRender = &cobra.Command{
	Use:   "render",
	Short: "Render a built-in scene",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()

		// Catch a bad format before spending any render time.
		imgFormat, err := outputFormat()
		if err != nil {
			return err
		}

		if cpuProfile != "" {
			f, err := os.Create(cpuProfile)
			if err != nil {
				return fmt.Errorf("while creating CPU profile: %w", err)
			}
			defer f.Close()
			if err := pprof.StartCPUProfile(f); err != nil {
				return fmt.Errorf("while starting CPU profile: %w", err)
			}
			defer pprof.StopCPUProfile()
		}

		rows := height
		if rows == 0 {
			if aspect <= 0 {
				return fmt.Errorf("aspect must be positive, got %v", aspect)
			}
			rows = int(float64(width) / aspect)
		}
		if width < 1 || rows < 1 {
			return fmt.Errorf("image must be at least 1x1, got %dx%d", width, rows)
		}

		options := &render.Options{
			MaxDepth:      maxDepth,
			TargetSamples: samplesPerPixel,
			Workers:       workers,
			RowsPerChunk:  rowsPerChunk,
			Seed:          seed,
		}
		if err := options.Validate(); err != nil {
			return err
		}

		world, err := scenes.Build(sceneName, rand.New(rand.NewSource(seed)))
		if err != nil {
			return fmt.Errorf("while building scene: %w", err)
		}

		imageAspect := float64(width) / float64(rows)
		var cam camera.Camera = camera.NewDefaultCamera(imageAspect)
		if lookFrom != "" {
			from, err := parseVec(lookFrom)
			if err != nil {
				return fmt.Errorf("while parsing --look-from: %w", err)
			}
			at, err := parseVec(lookAt)
			if err != nil {
				return fmt.Errorf("while parsing --look-at: %w", err)
			}
			cam, err = camera.NewPinholeCamera(from, at, vec3.T{0, 1, 0}, vfov, imageAspect)
			if err != nil {
				return fmt.Errorf("while placing camera: %w", err)
			}
		}

		im, err := loadSampleImage(rows, width)
		if err != nil {
			return err
		}

		glog.Infof("Rendering scene %q (%d objects) at %dx%d, %d samples per pixel, max depth %d, %d workers",
			sceneName, world.Len(), width, rows, samplesPerPixel, maxDepth, workers)

		renderErr := render.RenderScene(ctx, world, cam, options, im, progressReporter())
		if term.IsTerminal(int(os.Stderr.Fd())) {
			fmt.Fprintf(os.Stderr, "\n")
		}

		// Save whatever finished, even if the render was interrupted.
		if checkpointFile != "" {
			if err := sampleimage.WriteFile(im, checkpointFile); err != nil {
				return fmt.Errorf("while writing checkpoint: %w", err)
			}
			glog.Infof("Saved %d samples to %s", im.TotalSamples(), checkpointFile)
		}

		if renderErr != nil {
			if errors.Is(renderErr, context.Canceled) && checkpointFile != "" {
				glog.Warningf("Render interrupted; rerun with --resume to continue")
			}
			return fmt.Errorf("while rendering: %w", renderErr)
		}

		return writeImage(im, imgFormat)
	},
}

var cmdDevelop = &cobra.Command{
	Use:   "develop CHECKPOINT",
	Short: "Turn a checkpoint into an image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		imgFormat, err := outputFormat()
		if err != nil {
			return err
		}
		im, err := sampleimage.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("while reading checkpoint: %w", err)
		}
		return writeImage(im, imgFormat)
	},
}

var cmdScenes = &cobra.Command{
	Use:   "scenes",
	Short: "List the built-in scenes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range scenes.Names() {
			fmt.Println(name)
		}
	},
}

func main() {
	flag.Set("logtostderr", "true")
	cmdRoot.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	cmdRoot.AddCommand(cmdRender, cmdDevelop, cmdScenes)

	err := cmdRoot.Execute()
	glog.Flush()
	if err != nil {
		os.Exit(1)
	}
}
