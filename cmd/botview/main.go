// botview lays out a gallery grid of seed-generated robots and renders them
// with a slow orbit camera. The generator is pure and deterministic; this
// binary owns all the window, input, and GPU resource handling around it.
package main

import (
	"flag"
	"fmt"
	"math/rand"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"botforge/internal/assembly"
	"botforge/internal/debug"
	"botforge/internal/gallery"
	"botforge/internal/logger"
	"botforge/internal/placement"
	"botforge/internal/render"
	"botforge/internal/viewerconfig"
	"botforge/internal/viewscene"
)

const (
	windowWidth  = 1280
	windowHeight = 800
	bobAmplitude = 0.08
	bobSpeed     = 2.0
	spinSpeed    = 0.4
)

func main() {
	seedFlag := flag.String("seed", "", "base seed (overrides gallery file)")
	detailFlag := flag.Int("detail", 0, "detail level 1-3 (overrides prefs)")
	solidFlag := flag.Bool("solid", false, "solid render mode")
	flag.Parse()

	log := logger.New()
	prefs, _ := viewerconfig.Load()
	layout, err := gallery.Load()
	if err != nil {
		fmt.Println(err)
		return
	}
	if *seedFlag != "" {
		layout.BaseSeed = *seedFlag
	}
	detail := prefs.Detail
	if layout.Detail != 0 {
		detail = layout.Detail
	}
	if *detailFlag != 0 {
		detail = *detailFlag
	}
	solid := prefs.Solid
	if layout.Solid != nil {
		solid = *layout.Solid
	}
	if *solidFlag {
		solid = true
	}

	rl.InitWindow(windowWidth, windowHeight, "botforge gallery")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	scn := viewscene.New()
	scn.GridVisible = prefs.GridVisible
	dbg := debug.New()
	dbg.SetShowFPS(prefs.ShowFPS)
	rdr := render.New()
	defer rdr.Unload()

	robots := generateAll(layout, detail, solid)
	log.Log(fmt.Sprintf("gallery %q %dx%d detail=%d solid=%v", layout.BaseSeed, layout.Rows, layout.Cols, detail, solid))

	for !rl.WindowShouldClose() {
		scn.Update()

		regen := false
		switch {
		case rl.IsKeyPressed(rl.KeyR):
			layout.BaseSeed = fmt.Sprintf("robot-%03d", rand.Intn(1000))
			regen = true
		case rl.IsKeyPressed(rl.KeyD):
			detail = detail%3 + 1
			regen = true
		case rl.IsKeyPressed(rl.KeyS):
			solid = !solid
			regen = true
		case rl.IsKeyPressed(rl.KeyG):
			scn.GridVisible = !scn.GridVisible
		case rl.IsKeyPressed(rl.KeyF):
			dbg.SetShowFPS(!dbg.ShowFPS)
		}
		if regen {
			// old trees are dropped wholesale; the renderer cache is the only
			// GPU state to release
			rdr.Unload()
			robots = generateAll(layout, detail, solid)
			log.Log(fmt.Sprintf("regenerated %q detail=%d solid=%v", layout.BaseSeed, detail, solid))
		}

		t := float32(rl.GetTime())
		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(12, 14, 18, 255))
		scn.Begin()
		for i, robot := range robots {
			row, col := i/layout.Cols, i%layout.Cols
			x := (float32(col) - float32(layout.Cols-1)*0.5) * layout.Spacing
			z := (float32(row) - float32(layout.Rows-1)*0.5) * layout.Spacing
			y := 1.2 + bobAmplitude*math32.Sin(t*bobSpeed+float32(i))
			base := rl.MatrixMultiply(
				rl.MatrixRotateY(t*spinSpeed+float32(i)*0.7),
				rl.MatrixTranslate(x, y, z),
			)
			rdr.Draw(robot, base)
		}
		scn.End()
		dbg.Draw()
		rl.EndDrawing()
	}

	prefs.ShowFPS = dbg.ShowFPS
	prefs.GridVisible = scn.GridVisible
	prefs.Detail = detail
	prefs.Solid = solid
	_ = viewerconfig.Save(prefs)
}

// generateAll builds one robot tree per gallery cell. Each cell's seed is
// "<base>-<i>", so cells are independent deterministic robots.
func generateAll(l gallery.Layout, detail int, solid bool) []*placement.Group {
	robots := make([]*placement.Group, 0, l.Rows*l.Cols)
	for i := 0; i < l.Rows*l.Cols; i++ {
		robots = append(robots, assembly.Generate(l.Seed(i), detail, solid))
	}
	return robots
}
