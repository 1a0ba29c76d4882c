package cache

import "golang.org/x/image/math/fixed"

import "github.com/tinne26/glyphr/glyph"
import "github.com/tinne26/glyphr/mask"

var _ GlyphCacheHandler = (*DefaultCacheHandler)(nil)

// A default implementation of [GlyphCacheHandler].
//
// Keys are laid out as {font key, rasterizer signature, size << 32 | index}.
type DefaultCacheHandler struct {
	cache *DefaultCache
	activeKey Key
}

// Implements [GlyphCacheHandler].NotifyFontChange(...)
func (self *DefaultCacheHandler) NotifyFontChange(fontKey uint64) {
	self.activeKey[0] = fontKey
}

// Implements [GlyphCacheHandler].NotifyRasterizerChange(...)
func (self *DefaultCacheHandler) NotifyRasterizerChange(rasterizer mask.Rasterizer) {
	self.activeKey[1] = rasterizer.Signature()
}

// Implements [GlyphCacheHandler].NotifySizeChange(...)
func (self *DefaultCacheHandler) NotifySizeChange(size fixed.Int26_6) {
	self.activeKey[2] = (self.activeKey[2] & 0x00000000FFFFFFFF) | (uint64(uint32(size)) << 32)
}

// Implements [GlyphCacheHandler].GetMask(...)
func (self *DefaultCacheHandler) GetMask(index glyph.Index) (GlyphMask, bool) {
	return self.cache.GetMask(self.keyFor(index))
}

// Implements [GlyphCacheHandler].PassMask(...)
func (self *DefaultCacheHandler) PassMask(index glyph.Index, mask GlyphMask) {
	self.cache.PassMask(self.keyFor(index), mask)
}

// Provides access to the underlying [DefaultCache].
func (self *DefaultCacheHandler) Cache() *DefaultCache {
	return self.cache
}

func (self *DefaultCacheHandler) keyFor(index glyph.Index) Key {
	key := self.activeKey
	key[2] = (key[2] & 0xFFFFFFFF00000000) | uint64(index)
	return key
}
