/*
	opengl blob renderer

	Draws a population of circular blobs and food particles under an
	orthographic projection and overlays lines from every blob to its nearest
	rival (green) and nearest food (red).

	device (gl context, or any Device)
		fill program
			vertex: blob.vert (position, model, orthographic, time)
			fragment: blob.frag (color)
		line program
			vertex: line.vert (position, model, orthographic)
			fragment: blob.frag
		circle geometry
			256 vertex unit circle, drawn as triangle fan
		line buffer
			2 vertices, rewritten per line

	registry
		renderable per entity id (position, rotation, scale, color, size)

	frame
		idle -> cleared -> fill pass -> line pass -> idle
*/

package engine
