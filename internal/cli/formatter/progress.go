package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a progress bar like [████░░░░]  45%.
// The bar is green above 66%, yellow from 33% and red below.
func RenderProgress(pct float64, width int) string {
	pct = clamp01(pct)
	style := StyleGreen
	if pct < 0.33 {
		style = StyleRed
	} else if pct < 0.66 {
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar(pct, width)), pct*100)
}

// RenderXPBar shows progress through the current level in a fixed accent color.
func RenderXPBar(progress, perLevel, width int) string {
	pct := 0.0
	if perLevel > 0 {
		pct = clamp01(float64(progress) / float64(perLevel))
	}
	return fmt.Sprintf("[%s] %d/%d XP", StylePurple.Render(bar(pct, width)), progress, perLevel)
}

// RenderCompactBar renders only the blocks, without brackets or a label.
func RenderCompactBar(pct float64, width int, dim bool) string {
	s := bar(clamp01(pct), width)
	if dim {
		return StyleDim.Render(s)
	}
	return StyleGreen.Render(s)
}

func bar(pct float64, width int) string {
	if width < 2 {
		width = 2
	}
	filled := min(int(pct*float64(width)), width)
	return strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
}

func clamp01(f float64) float64 {
	return min(max(f, 0), 1)
}
