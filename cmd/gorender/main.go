// Command gorender loads a JSON scene description and rasterizes it with
// the CPU deferred-shading pipeline, writing the result (and, with
// --verbose, the six debug buffers) as PNG files.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/flooferdoodle/gorender/framebuffer"
	"github.com/flooferdoodle/gorender/internal/rlog"
	"github.com/flooferdoodle/gorender/render"
	"github.com/flooferdoodle/gorender/sceneio"
)

const (
	defaultWidth  = 256
	defaultHeight = 256
)

var (
	outTitle string
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "gorender <scene.json>",
	Short: "Rasterize a JSON scene with a CPU deferred-shading renderer",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	rootCmd.Flags().StringVarP(&outTitle, "out", "o", "image", "output file title (writes <title>.png)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "also write the six debug buffers")
}

func runRender(cmd *cobra.Command, args []string) error {
	defer rlog.Log.Sync()

	scenePath := args[0]
	s, err := sceneio.Load(scenePath)
	if err != nil {
		rlog.Log.Error("failed to load scene", zap.String("path", scenePath), zap.Error(err))
		return err
	}

	renderer := render.New()
	fb, stats, err := renderer.Render(s, defaultWidth, defaultHeight)
	if err != nil {
		rlog.Log.Error("render failed", zap.Error(err))
		return err
	}

	outPath := outTitle + ".png"
	if err := fb.WritePNG(outPath); err != nil {
		rlog.Log.Error("failed to write output image", zap.String("path", outPath), zap.Error(err))
		return err
	}

	if verbose {
		if err := writeDebugBuffers(renderer, outTitle, defaultWidth, defaultHeight); err != nil {
			rlog.Log.Error("failed to write debug buffers", zap.Error(err))
			return err
		}
	}

	rlog.Log.Info("render complete",
		zap.Int("meshes", stats.Meshes),
		zap.Int("triangles_total", stats.TrianglesTotal),
		zap.Int("triangles_drawn", stats.TrianglesDrawn),
		zap.Int("lights", stats.Lights),
		zap.Duration("elapsed", stats.Elapsed),
	)
	fmt.Printf("meshes=%d triangles_total=%d triangles_drawn=%d lights=%d elapsed=%s\n",
		stats.Meshes, stats.TrianglesTotal, stats.TrianglesDrawn, stats.Lights, stats.Elapsed)
	return nil
}

func writeDebugBuffers(r *render.Renderer, title string, width, height int) error {
	kinds := []render.BufferKind{
		render.BufferDepth,
		render.BufferInvDepth,
		render.BufferNormal,
		render.BufferAlbedo,
		render.BufferSpecular,
		render.BufferPosition,
	}
	for _, kind := range kinds {
		dst := framebuffer.New(width, height)
		if err := r.DebugView(kind, dst); err != nil {
			return err
		}
		if err := dst.WritePNG(fmt.Sprintf("%s_%s.png", title, kind.Suffix())); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
