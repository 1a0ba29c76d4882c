package cache

import "sync"
import "sync/atomic"

// Cache keys are made of three parts: the font key, the rasterizer
// signature, and the size and glyph index packed together. See
// [DefaultCacheHandler] for the details.
type Key [3]uint64

// The default glyph mask cache. It is concurrent-safe (though not
// optimized for heavily concurrent scenarios), it has memory bounds
// and evicts entries by sampling a few of them and removing the
// coldest one.
//
// Providers don't use the cache directly, but through a handler
// created with [DefaultCache.NewHandler]().
type DefaultCache struct {
	cachedMasks map[Key]*cachedMaskEntry
	spaceBytesLeft uint32
	lowestBytesLeft uint32
	byteSizeLimit uint32
	mutex sync.RWMutex
}

// Creates a new cache bounded by the given size. Negative values
// will panic.
//
// Glyph masks for text at 36px are usually below 1KiB, so a cache
// of a few hundred KiBs is typically enough for a whole font.
func NewDefaultCache(maxByteSize int) *DefaultCache {
	if maxByteSize < 0 { panic("maxByteSize < 0") }
	return &DefaultCache {
		cachedMasks: make(map[Key]*cachedMaskEntry, 128),
		spaceBytesLeft: uint32(maxByteSize),
		lowestBytesLeft: uint32(maxByteSize),
		byteSizeLimit: uint32(maxByteSize),
	}
}

// Attempts to remove the entry with the lowest hotness from a small
// pool of samples. Map iteration order is what makes the sampling
// random. Nothing is removed if all the samples are hotter than the
// given reference.
//
// The returned value is the freed space, which must be manually
// added to spaceBytesLeft by the caller.
func (self *DefaultCache) evictColdSample(hotness uint32, instant uint32) uint32 {
	const SampleSize = 10

	self.mutex.RLock()
	var selectedKey Key
	lowestHotness := ^uint32(0)
	samplesTaken  := 0
	for key, entry := range self.cachedMasks {
		currHotness := entry.Hotness(instant)
		if currHotness < lowestHotness {
			lowestHotness = currHotness
			selectedKey = key
		}
		samplesTaken += 1
		if samplesTaken >= SampleSize { break }
	}
	self.mutex.RUnlock()

	if lowestHotness >= hotness { return 0 }

	self.mutex.Lock()
	defer self.mutex.Unlock()
	entry, stillExists := self.cachedMasks[selectedKey]
	if !stillExists { return 0 }
	delete(self.cachedMasks, selectedKey)
	return entry.ByteSize
}

// Stores the given mask with the given key. If the mask doesn't fit,
// a few cold entries may be evicted to make room. If that's still not
// enough, the mask is simply not cached.
func (self *DefaultCache) PassMask(key Key, mask GlyphMask) {
	const MaxMakeRoomAttempts = 2

	entry, instant := newCachedMaskEntry(mask)
	if entry.ByteSize > atomic.LoadUint32(&self.byteSizeLimit) { return }

	spaceBytesLeft := atomic.LoadUint32(&self.spaceBytesLeft)
	if entry.ByteSize > spaceBytesLeft {
		hotness := entry.Hotness(instant)
		missingSpace := entry.ByteSize - spaceBytesLeft
		freedSpace := uint32(0)
		for i := 0; i < MaxMakeRoomAttempts && freedSpace < missingSpace; i++ {
			freedSpace += self.evictColdSample(hotness, instant)
		}
		if freedSpace != 0 { atomic.AddUint32(&self.spaceBytesLeft, freedSpace) }
		if freedSpace < missingSpace { return }
	}

	self.mutex.Lock()
	defer self.mutex.Unlock()
	_, maskAlreadyExists := self.cachedMasks[key]
	if maskAlreadyExists { return }
	if atomic.LoadUint32(&self.spaceBytesLeft) < entry.ByteSize { return }
	newLeft := atomic.AddUint32(&self.spaceBytesLeft, ^uint32(entry.ByteSize - 1))
	if newLeft < atomic.LoadUint32(&self.lowestBytesLeft) {
		atomic.StoreUint32(&self.lowestBytesLeft, newLeft)
	}
	self.cachedMasks[key] = entry
}

// Gets the mask associated to the given key. The bool indicates
// whether the mask has been found (as it may be nil).
func (self *DefaultCache) GetMask(key Key) (GlyphMask, bool) {
	self.mutex.RLock()
	entry, found := self.cachedMasks[key]
	self.mutex.RUnlock()
	if !found { return nil, false }
	entry.IncreaseAccessCount()
	return entry.Mask, true
}

// Returns the number of masks currently stored in the cache.
func (self *DefaultCache) NumEntries() int {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	return len(self.cachedMasks)
}

// Returns an approximation of the number of bytes taken by the
// glyph masks currently stored in the cache.
func (self *DefaultCache) ApproxByteSize() int {
	return int(atomic.LoadUint32(&self.byteSizeLimit) - atomic.LoadUint32(&self.spaceBytesLeft))
}

// Returns an approximation of the maximum amount of bytes that the
// cache has been filled with at any point of its life.
func (self *DefaultCache) PeakSize() int {
	return int(atomic.LoadUint32(&self.byteSizeLimit) - atomic.LoadUint32(&self.lowestBytesLeft))
}

// Returns a new cache handler for the current cache. While DefaultCache
// is concurrent-safe, handlers can only be used non-concurrently. Each
// provider should get its own handler.
func (self *DefaultCache) NewHandler() *DefaultCacheHandler {
	return &DefaultCacheHandler{ cache: self }
}
