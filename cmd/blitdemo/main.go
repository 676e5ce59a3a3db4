// Command blitdemo renders a sample scene with the blit library and writes
// it to a BMP or PNG file.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/blit"
	"github.com/gogpu/blit/fix"
	"github.com/gogpu/blit/pixel"
)

func main() {
	var (
		width   = flag.Int("w", 320, "image width")
		height  = flag.Int("h", 240, "image height")
		output  = flag.String("out", "blitdemo.png", "output file")
		format  = flag.String("format", "png", "output format: bmp or png")
		frame   = flag.Int("frame", 0, "animation frame to render")
		verbose = flag.Bool("v", false, "log span table rebuilds and target switches")
	)
	flag.Parse()

	if *verbose {
		blit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	screen, err := blit.NewSurface(*width, *height)
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}

	ctx := blit.NewContext(screen, blit.WithDebug(true))
	if err := render(ctx, *frame); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	if err := save(screen, *output, *format); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}

func save(s *blit.Surface, path, format string) error {
	switch format {
	case "png":
		return s.SavePNG(path)
	case "bmp":
		return s.SaveBMP(path)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func named(name string) pixel.Pixel {
	p, ok := pixel.Named(name)
	if !ok {
		log.Fatalf("unknown color %q", name)
	}
	return p
}

func render(ctx *blit.Context, frame int) error {
	w, h := ctx.Target().Width(), ctx.Target().Height()

	drawBackground(ctx, w, h)
	drawShapes(ctx)

	sp, err := makeSprite()
	if err != nil {
		return err
	}
	drawSprites(ctx, sp, frame, w, h)
	return nil
}

func drawBackground(ctx *blit.Context, w, h int) {
	const steps = 32
	for i := range steps {
		y := h * i / steps
		ctx.SetColorRGB(20+i*2, 30+i*3, 60+i*4)
		ctx.DrawRectangleFilled(0, y, w, h/steps+1)
	}
}

func drawShapes(ctx *blit.Context) {
	ctx.PushColor()
	defer ctx.PopColor()

	// Translucent overlapping circles
	ctx.SetBlend(blit.BlendAlpha)
	ctx.SetAlpha(blit.MaxAlpha * 3 / 4)
	for i, name := range []string{"tomato", "limegreen", "royalblue"} {
		ctx.SetColorPixel(named(name))
		ctx.DrawCircleFilled(60+i*25, 60+(i%2)*30, 35)
	}

	ctx.SetBlend(blit.BlendPlain)
	ctx.SetColorPixel(named("gold"))
	ctx.DrawRectangleOutline(160, 20, 120, 80)

	// Lines clipped to the rectangle
	ctx.PushClip(161, 21, 118, 78)
	ctx.SetColorPixel(named("white"))
	for i := 0; i < 240; i += 12 {
		ctx.DrawLine(160+i, 20, 160, 20+i)
	}
	ctx.PopClip()

	ctx.SetBlend(blit.BlendAdd)
	ctx.SetColorHex(0x402010)
	ctx.DrawCircleOutline(220, 60, 50)
}

// makeSprite draws a two-frame sprite sheet off screen: an arrow pointing
// right, and the same arrow with a notch.
func makeSprite() (*blit.Sprite, error) {
	sheet, err := blit.NewSurface(32, 16)
	if err != nil {
		return nil, err
	}
	sheet.Fill(pixel.DefaultKey)
	sheet.SetColorKey(pixel.DefaultKey)

	c := blit.NewContext(sheet)
	for f := range 2 {
		x := f * 16
		c.SetColorPixel(named("orange"))
		c.DrawRectangleFilled(x+1, 6, 9, 4)
		for i := range 6 {
			c.DrawVLine(x+9+i, 2+i, 13-i)
		}
		if f == 1 {
			c.SetColorPixel(pixel.DefaultKey)
			c.DrawRectangleFilled(x+1, 7, 3, 2)
		}
	}

	return blit.NewSpriteSheet(sheet, 16, 16)
}

func drawSprites(ctx *blit.Context, sp *blit.Sprite, frame, w, h int) {
	ctx.PushAlign()
	defer ctx.PopAlign()

	ctx.SetAlign(blit.AlignCenter, blit.AlignMiddle)

	// Shadow first, then the sprite itself
	ctx.PushColor()
	ctx.SetFillBlit(true)
	ctx.SetBlend(blit.BlendAlpha)
	ctx.SetAlpha(blit.MaxAlpha / 2)
	ctx.SetColorPixel(named("black"))
	ctx.Blit(sp.Frame(frame), w/2+3, h-37)
	ctx.PopColor()
	ctx.BlitFrame(sp, frame, w/2, h-40)

	// A ring of rotated, scaled copies
	cx, cy := w/2, h/2+40
	for i := range 8 {
		angle := fix.AngleWrap(i*fix.Deg45 + frame*fix.Deg1)
		v := fix.RotateCounter(fix.FromInt(50), 0, angle)
		scale := fix.One + fix.FromInt(i)/4
		ctx.BlitFrameEx(sp, frame+i, cx+v.X.Int(), cy+v.Y.Int(), scale, angle, 0, 0)
	}
}
