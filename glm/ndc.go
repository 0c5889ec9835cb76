package glm

// NDCToScreen maps normalized device coordinates to screen space of the given
// size. In device coordinates (-1, -1) is the bottom left and (1, 1) the top
// right corner, on screen (0, 0) is the top left corner.
func NDCToScreen(ndc Vec2f, width, height float32) Vec2f {
	x, y := ndc.XY()

	return Vec2f{
		(x + 1) / 2 * width,
		(1 - y) / 2 * height,
	}
}
