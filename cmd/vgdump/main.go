// Command vgdump renders a sample image through the "dump" render
// target, which prints the image tree's structure instead of pixels —
// a minimal demonstration of the backend SPI in github.com/monstasat/vg/render.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/monstasat/vg"
	"github.com/monstasat/vg/meta"
	"github.com/monstasat/vg/render"
)

func init() {
	render.Register("dump", func() render.Target { return &dumpTarget{} })
}

// dumpTarget is a trivial render.Target: it ignores the output window
// entirely (writing straight to standard output) and instead prints the
// rendered image's tree via vg.ImagePretty, demonstrating a backend
// that fits the OtherDst destination kind.
type dumpTarget struct{}

func (dumpTarget) Render(r *render.Renderer, ren render.Renderable) (render.Code, error) {
	fmt.Fprint(os.Stdout, vg.ImagePretty(ren.Image))
	return render.Ok, nil
}

func (dumpTarget) Finish(r *render.Renderer) (render.Code, error) {
	return render.Ok, nil
}

func newRootCmd() *cobra.Command {
	var targetName string

	root := &cobra.Command{
		Use:   "vgdump",
		Short: "Render a sample image through a registered vg/render target",
		RunE: func(cmd *cobra.Command, args []string) error {
			target, ok := render.Get(targetName)
			if !ok {
				return fmt.Errorf("vgdump: no render target registered as %q", targetName)
			}
			md := meta.Add(meta.Empty(), meta.Title, "vgdump sample")
			r := render.New(render.OtherDst{}, render.Once, target, 0, nil, md)
			img := vg.CutPath(vg.Circle(vg.Pt(0, 0), 1), vg.Const(vg.Red))
			ren := render.Renderable{Size: vg.Size2{W: 100, H: 100}, View: vg.BoxOfPoints(vg.Pt(-1, -1), vg.Pt(1, 1)), Image: img}
			if _, err := r.Image(ren); err != nil {
				return err
			}
			_, err := r.End()
			return err
		},
	}
	root.Flags().StringVar(&targetName, "target", "dump", "registered render target to use")
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
