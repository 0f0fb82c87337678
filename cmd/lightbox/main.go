// Command lightbox browses a directory of images or a YAML manifest in a
// zoomable, swipeable viewer window.
package main

func main() {
	exitOnError(Execute())
}
