package scenes

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// drawTextTopLeft 以左上角为锚点绘制单行文本
func drawTextTopLeft(screen *ebiten.Image, str string, face text.Face, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

// drawTextCentered 以文本中心为锚点
func drawTextCentered(screen *ebiten.Image, str string, face text.Face, cx, cy float64, clr color.Color) {
	w, h := text.Measure(str, face, 0)
	drawTextTopLeft(screen, str, face, cx-w/2, cy-h/2, clr)
}

// drawTextMidTop 水平居中，y 为文本顶边
func drawTextMidTop(screen *ebiten.Image, str string, face text.Face, cx, top float64, clr color.Color) {
	w, _ := text.Measure(str, face, 0)
	drawTextTopLeft(screen, str, face, cx-w/2, top, clr)
}

// drawTextMidBottom 水平居中，y 为文本底边
func drawTextMidBottom(screen *ebiten.Image, str string, face text.Face, cx, bottom float64, clr color.Color) {
	w, h := text.Measure(str, face, 0)
	drawTextTopLeft(screen, str, face, cx-w/2, bottom-h, clr)
}

// drawRectBorder 用四条细矩形描出边框
func drawRectBorder(screen *ebiten.Image, x, y, w, h, thickness float64, clr color.Color) {
	ebitenutil.DrawRect(screen, x, y, w, thickness, clr)
	ebitenutil.DrawRect(screen, x, y+h-thickness, w, thickness, clr)
	ebitenutil.DrawRect(screen, x, y, thickness, h, clr)
	ebitenutil.DrawRect(screen, x+w-thickness, y, thickness, h, clr)
}
