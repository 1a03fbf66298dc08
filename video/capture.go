package video

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

// Errors returned by Capture lifecycle methods.
var (
	// ErrCaptureStarted is returned by Start when the reader is already running.
	ErrCaptureStarted = errors.New("video: capture already started")
	// ErrCaptureStopped is returned by Stop when the reader was never started.
	ErrCaptureStopped = errors.New("video: capture not started")
	// ErrCaptureClosed is returned by Read after the reader has finished.
	ErrCaptureClosed = errors.New("video: capture closed")
	// ErrCaptureTimeout is returned by Read when no frame arrives in time.
	ErrCaptureTimeout = errors.New("video: timed out waiting for frame")
)

// DefaultReadTimeout is used by Read when no timeout is given.
const DefaultReadTimeout = 10 * time.Second

// CaptureOptions configures a Capture.
type CaptureOptions struct {
	// CacheFrames is the number of frames buffered between the reader
	// goroutine and the consumer. Zero means 30. Ignored for streams, which
	// always keep only the most recent frame.
	CacheFrames int
	// Stream marks a live source (camera, RTSP). Live sources drop stale
	// frames instead of back-pressuring the reader.
	Stream bool
	// AutoStop stops the reader when no frame has been consumed for this
	// long. Zero disables the idle stop.
	AutoStop time.Duration
}

func (o CaptureOptions) cacheSize() int {
	if o.Stream {
		return 1
	}
	if o.CacheFrames <= 0 {
		return 30
	}
	return o.CacheFrames
}

// Info describes a capture source as reported by the backend.
type Info struct {
	Width  int
	Height int
	FPS    float64
}

// Capture reads decoded frames from a video source into a bounded channel.
//
// Construct with OpenFile, OpenDevice or OpenStream, call Start to launch the
// reader goroutine, consume via Frames or Read, and Close when done. A
// Capture is single-use: once the reader finishes it cannot be restarted.
type Capture struct {
	vc   *gocv.VideoCapture
	opts CaptureOptions

	mu      sync.Mutex
	frames  chan Frame
	cancel  context.CancelFunc
	running bool

	// lastTake holds the unix nanos of the most recent consumer take, used
	// by the idle auto-stop on live sources.
	lastTake atomic.Int64
}

// OpenFile opens a video file for reading.
func OpenFile(path string, opts CaptureOptions) (*Capture, error) {
	return open(path, opts)
}

// OpenDevice opens a capture device by index.
func OpenDevice(id int, opts CaptureOptions) (*Capture, error) {
	opts.Stream = true
	return open(id, opts)
}

// OpenStream opens a network stream (RTSP and friends).
func OpenStream(url string, opts CaptureOptions) (*Capture, error) {
	opts.Stream = true
	return open(url, opts)
}

func open(source interface{}, opts CaptureOptions) (*Capture, error) {
	vc, err := gocv.OpenVideoCapture(source)
	if err != nil {
		return nil, errors.Wrapf(err, "opening capture %v", source)
	}
	return &Capture{vc: vc, opts: opts}, nil
}

// Info returns the source dimensions and frame rate from backend properties.
func (c *Capture) Info() Info {
	return Info{
		Width:  int(c.vc.Get(gocv.VideoCaptureFrameWidth)),
		Height: int(c.vc.Get(gocv.VideoCaptureFrameHeight)),
		FPS:    c.vc.Get(gocv.VideoCaptureFPS),
	}
}

// Start launches the reader goroutine. Frames become available on Frames()
// until the source ends, the context is canceled, or the idle auto-stop
// fires.
//
// Returns ErrCaptureStarted when already running.
func (c *Capture) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.running {
		return ErrCaptureStarted
	}

	ctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.frames = make(chan Frame, c.opts.cacheSize())
	c.running = true
	c.lastTake.Store(time.Now().UnixNano())

	go c.pump(ctx)
	return nil
}

func (c *Capture) pump(ctx context.Context) {
	defer close(c.frames)

	img := gocv.NewMat()
	defer img.Close()

	for index := 0; ; index++ {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if ok := c.vc.Read(&img); !ok {
			return
		}
		if img.Empty() {
			index--
			continue
		}

		frame := Frame{Mat: img.Clone(), Index: index}
		if c.opts.Stream {
			if c.idleExpired() {
				frame.Close()
				return
			}
			c.deliverLatest(frame)
			continue
		}
		if !c.deliver(ctx, frame) {
			return
		}
	}
}

// idleExpired reports whether AutoStop is set and nothing has been consumed
// for longer than it allows.
func (c *Capture) idleExpired() bool {
	if c.opts.AutoStop <= 0 {
		return false
	}
	return time.Since(time.Unix(0, c.lastTake.Load())) > c.opts.AutoStop
}

// deliverLatest replaces any stale buffered frame with the fresh one,
// dropping rather than blocking. Used for live sources.
func (c *Capture) deliverLatest(frame Frame) {
	select {
	case c.frames <- frame:
		// Room in the buffer means the consumer drained the previous frame.
		c.lastTake.Store(time.Now().UnixNano())
		return
	default:
	}
	select {
	case stale := <-c.frames:
		stale.Close()
	default:
	}
	select {
	case c.frames <- frame:
	default:
		frame.Close()
	}
}

// deliver blocks until the consumer takes the frame, the context is canceled
// or the idle auto-stop fires. Returns false when the reader should exit.
func (c *Capture) deliver(ctx context.Context, frame Frame) bool {
	if c.opts.AutoStop <= 0 {
		select {
		case c.frames <- frame:
			return true
		case <-ctx.Done():
			frame.Close()
			return false
		}
	}

	idle := time.NewTimer(c.opts.AutoStop)
	defer idle.Stop()

	select {
	case c.frames <- frame:
		return true
	case <-idle.C:
		frame.Close()
		return false
	case <-ctx.Done():
		frame.Close()
		return false
	}
}

// Frames exposes the frame channel. It is closed when the reader finishes;
// the consumer owns (and must Close) every frame it receives.
func (c *Capture) Frames() <-chan Frame {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frames
}

// Read pops the next frame, waiting up to timeout (DefaultReadTimeout when
// zero or negative).
//
// Returns:
// - The next frame; the caller must Close it.
// - ErrCaptureStopped before Start, ErrCaptureClosed after the reader
//   finished, or ErrCaptureTimeout when nothing arrives in time.
func (c *Capture) Read(timeout time.Duration) (Frame, error) {
	c.mu.Lock()
	frames := c.frames
	c.mu.Unlock()

	if frames == nil {
		return Frame{}, ErrCaptureStopped
	}
	if timeout <= 0 {
		timeout = DefaultReadTimeout
	}

	select {
	case frame, ok := <-frames:
		if !ok {
			return Frame{}, ErrCaptureClosed
		}
		c.lastTake.Store(time.Now().UnixNano())
		return frame, nil
	case <-time.After(timeout):
		return Frame{}, ErrCaptureTimeout
	}
}

// Stop cancels the reader goroutine. Returns ErrCaptureStopped when Start
// was never called.
func (c *Capture) Stop() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running {
		return ErrCaptureStopped
	}
	c.cancel()
	c.running = false
	return nil
}

// Close stops the reader if needed and releases the capture device.
func (c *Capture) Close() error {
	c.mu.Lock()
	if c.running {
		c.cancel()
		c.running = false
	}
	c.mu.Unlock()

	return errors.Wrap(c.vc.Close(), "closing capture")
}
