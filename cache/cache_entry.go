package cache

import "image"
import "time"
import "sync/atomic"

// Glyph masks as produced by mask rasterizers. A nil mask is a
// valid value (spaces and other empty glyphs).
type GlyphMask = *image.Alpha

// Fixed overhead accounted for each cached mask, in bytes.
const constMaskSizeFactor = 56

// Returns the approximate number of bytes used by the given mask
// when stored in a cache.
func GlyphMaskByteSize(mask GlyphMask) uint32 {
	if mask == nil { return constMaskSizeFactor }
	return uint32(mask.Rect.Dx()*mask.Rect.Dy()) + constMaskSizeFactor
}

// A cached mask with additional information to estimate how
// much the entry is being used.
type cachedMaskEntry struct {
	Mask GlyphMask // read-only
	ByteSize uint32 // read-only
	CreationInstant uint32 // see cacheEntryInstant(), read-only
	accessCount uint32 // number of times the entry has been accessed
}

// Must be called after accessing an entry in order to keep the
// Hotness() heuristic making sense. Concurrent-safe.
func (self *cachedMaskEntry) IncreaseAccessCount() {
	atomic.AddUint32(&self.accessCount, 1)
}

// A measure of "bytes accessed per time". Coldest entries
// (smallest values) are candidates for eviction. Concurrent-safe.
func (self *cachedMaskEntry) Hotness(instant uint32) uint32 {
	const ConstEvictionCost = 1000 // additional threshold and pad
	bytesHit := self.ByteSize*atomic.LoadUint32(&self.accessCount)
	elapsed  := instant - self.CreationInstant
	if elapsed == 0 { elapsed = 1 }
	return (ConstEvictionCost + bytesHit)/elapsed
}

// Reference point for cache instants. Monotonic.
var processStart = time.Now()

// Tests bump this to simulate elapsed time without sleeping.
var testInstantOffset time.Duration

// A time instant derived from the monotonic clock, downscaled to
// units of roughly 134ms (nanoseconds >> 27).
func cacheEntryInstant() uint32 {
	elapsed := time.Since(processStart) + testInstantOffset
	return uint32(int64(elapsed) >> 27)
}

// Creates a new cached mask entry for the given GlyphMask.
func newCachedMaskEntry(mask GlyphMask) (*cachedMaskEntry, uint32) {
	instant := cacheEntryInstant()
	return &cachedMaskEntry {
		Mask: mask,
		ByteSize: GlyphMaskByteSize(mask),
		CreationInstant: instant,
		accessCount: 1,
	}, instant
}
