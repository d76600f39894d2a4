package main

import (
	"fmt"

	"github.com/automoto/planetdrop/config"
	"github.com/automoto/planetdrop/launcher"
	"github.com/automoto/planetdrop/shared/gamemath"
	"github.com/spf13/cobra"
)

var (
	flagDX     float64
	flagDY     float64
	flagRadius float64
)

var trajectoryCmd = &cobra.Command{
	Use:   "trajectory",
	Short: "Print the predicted path for a drag vector",
	Long: `Trajectory prints the preview polyline for a pull-back of (dx, dy), measured
from the pointer to the spawn point, on the configured arena. One point per line.

Examples:
  planetdrop trajectory --dy 80
  planetdrop trajectory --dx -120 --dy 60 --radius 18`,
	RunE: runTrajectory,
}

func init() {
	trajectoryCmd.Flags().Float64Var(&flagDX, "dx", 0, "Drag x component")
	trajectoryCmd.Flags().Float64Var(&flagDY, "dy", 0, "Drag y component (positive throws downward)")
	trajectoryCmd.Flags().Float64Var(&flagRadius, "radius", 0, "Planet radius used as the wall margin (default: smallest level)")
}

func runTrajectory(cmd *cobra.Command, args []string) error {
	geometry := launcher.ComputeGeometry(float64(config.C.Width), float64(config.C.Height), config.Arena)

	radius := flagRadius
	if radius <= 0 {
		radius = config.Planets.Levels[0].Radius
	}
	drag := gamemath.ClampMagnitude(gamemath.Vec2{X: flagDX, Y: flagDY}, config.Launch.MaxStretch)
	velocity := gamemath.LaunchVelocity(drag, config.Launch.MaxStretch, config.Launch.MaxSpeed)

	points := gamemath.PredictTrajectory(geometry.SpawnPoint, drag, gamemath.TrajectoryParams{
		MaxStretch: config.Launch.MaxStretch,
		MaxSpeed:   config.Launch.MaxSpeed,
		Steps:      config.Preview.Steps,
		StepScale:  config.Preview.StepScale,
		Bounds:     geometry.PreviewBounds(radius),
	})

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# velocity %.3f,%.3f px/tick\n", velocity.X, velocity.Y)
	for i, p := range points {
		fmt.Fprintf(out, "%d %.2f %.2f\n", i, p.X, p.Y)
	}
	return nil
}
