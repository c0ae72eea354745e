package stack

import "os"

// Image is an arena backed by an image file. On Linux and macOS the file is
// memory-mapped read-write, so pushes and pops mutate the page cache
// directly and Sync makes them durable. On other platforms the file is read
// into memory and Sync writes the buffer back.
//
//	im, err := stack.Open("queue.stk")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer im.Close()
//
//	s := im.Stack()
//	s.Push([]byte("job"))
//	im.Sync()
type Image struct {
	f    *os.File
	data []byte
	s    *Stack
	path string
}

// Stack returns the live arena view over the image file. The handle is
// detached when the image is closed.
func (im *Image) Stack() *Stack {
	if im == nil {
		return nil
	}
	return im.s
}

// Path returns the file the image was opened from.
func (im *Image) Path() string {
	if im == nil {
		return ""
	}
	return im.path
}
