package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"topo-field/snapshot"
)

func snapshotCmd() *cobra.Command {
	var opts snapshot.Options

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render frames headlessly and write the last one as PNG",
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := mustMode()
			if err != nil {
				return err
			}
			st, err := snapshot.Render(cmd.Context(), settings, mode, opts)
			if err != nil {
				return err
			}
			fmt.Printf("%s %s  %s\n", Good.Sprint("wrote"), opts.Out,
				Subtle.Sprintf("%d frames, %d nodes, %d edges, %d/%d packets",
					opts.Frames, st.Nodes, st.Edges, st.ActivePackets, st.Packets))
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Out, "output", "o", "snapshot.png", "PNG file to write")
	cmd.Flags().IntVarP(&opts.Frames, "frames", "n", 120, "Frames to simulate")
	cmd.Flags().IntVar(&opts.Width, "width", 0, "Canvas width (defaults to the window width)")
	cmd.Flags().IntVar(&opts.Height, "height", 0, "Canvas height (defaults to the window height)")
	cmd.Flags().StringVar(&opts.SaveFile, "save", "", "Also write the final field state as YAML")
	cmd.Flags().StringVar(&opts.LoadFile, "load", "", "Start from a saved field state")
	return cmd
}
