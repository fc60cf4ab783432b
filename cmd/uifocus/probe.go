package main

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/uifocus/core"
	"github.com/lixenwraith/uifocus/engine"
	"github.com/lixenwraith/uifocus/input"
	"github.com/lixenwraith/uifocus/render"
	"github.com/lixenwraith/uifocus/scene"
	"github.com/lixenwraith/uifocus/system"
)

type probeOptions struct {
	at      string
	click   bool
	touch   bool
	metrics bool
}

func newProbeCmd(root *rootOptions) *cobra.Command {
	opts := &probeOptions{}
	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Resolve one frame headlessly and print every element's interaction",
		Long: "Places the pointer at --at, optionally clicking, runs a single frame and prints elements front to back.\n" +
			"Without --at the pointer is absent and every element resolves to none.",
		Example: "  uifocus probe --at 20,8 --click\n  uifocus probe -s menu.yaml --at 10,10 --touch",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sc, err := loadScene(root.cfg.Scene)
			if err != nil {
				return err
			}
			w, err := probe(sc, opts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if err := writeElements(out, w); err != nil {
				return err
			}
			if !opts.metrics {
				return nil
			}
			fmt.Fprintln(out)
			return writeMetrics(out, w)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.at, "at", "", "pointer position as x,y")
	flags.BoolVar(&opts.click, "click", false, "press the primary button (or lift the finger with --touch) this frame")
	flags.BoolVar(&opts.touch, "touch", false, "report the pointer as a touch instead of the mouse")
	flags.BoolVar(&opts.metrics, "metrics", false, "also print frame metrics")
	return cmd
}

// probe spawns sc into a fresh world and runs exactly one frame with the requested pointer
func probe(sc *scene.Scene, opts *probeOptions) (*engine.World, error) {
	w := engine.NewWorld()
	p := system.Install(w, system.Options{})
	scene.Spawn(w, sc)

	if opts.at != "" {
		pos, err := parsePoint(opts.at)
		if err != nil {
			return nil, err
		}
		inbox := p.Input.Inbox
		switch {
		case opts.touch:
			inbox.Push(input.TouchEvent(input.TouchInput{Phase: input.TouchStarted, ID: input.PrimaryTouch, Position: pos}))
			if opts.click {
				inbox.Push(input.TouchEvent(input.TouchInput{Phase: input.TouchEnded, ID: input.PrimaryTouch, Position: pos}))
			}
		default:
			inbox.Push(input.CursorMoved(pos))
			if opts.click {
				inbox.Push(input.MouseButtonEvent(input.MouseLeft, true))
			}
		}
	} else if opts.click || opts.touch {
		return nil, fmt.Errorf("--click and --touch need --at")
	}

	w.Update()
	return w, nil
}

// parsePoint reads "x,y"
func parsePoint(s string) (core.Vec2, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return core.Vec2{}, fmt.Errorf("point %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return core.Vec2{}, fmt.Errorf("point %q: x: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return core.Vec2{}, fmt.Errorf("point %q: y: %w", s, err)
	}
	return core.V2(x, y), nil
}

func writeElements(out io.Writer, w *engine.World) error {
	table := tablewriter.NewWriter(out)
	table.Header("Name", "Entity", "Z", "Policy", "Visible", "Interaction")

	for _, it := range render.FrontToBack(render.Collect(w)) {
		visible := "-"
		if it.Visible() {
			visible = fmt.Sprintf("%v-%v", it.Rect.Min, it.Rect.Max)
		}
		err := table.Append([]string{
			it.Label,
			strconv.FormatUint(uint64(it.Entity), 10),
			strconv.FormatFloat(it.Depth, 'g', -1, 64),
			it.Policy.String(),
			visible,
			it.State.String(),
		})
		if err != nil {
			return fmt.Errorf("element %q: %w", it.Label, err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("render elements: %w", err)
	}
	return nil
}

func writeMetrics(out io.Writer, w *engine.World) error {
	snap := w.Status.Snapshot()
	keys := make([]string, 0, len(snap))
	for k := range snap {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	table := tablewriter.NewWriter(out)
	table.Header("Metric", "Value")
	for _, k := range keys {
		if err := table.Append([]string{k, strconv.FormatInt(snap[k], 10)}); err != nil {
			return fmt.Errorf("metric %q: %w", k, err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("render metrics: %w", err)
	}
	return nil
}
