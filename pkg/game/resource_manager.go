package game

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/gonewx/survivors/pkg/utils"
)

// ResourceManager is responsible for centralized management of game resources.
// It provides loading and caching mechanisms for images, pixel masks and audio,
// ensuring that resources are loaded only once and reused throughout the game.
//
// Every image is decoded exactly once: the decoded pixels feed both the GPU
// image and the collision mask, so the two always agree. When an asset file is
// missing the manager degrades to a solid-color placeholder with a fully
// filled mask, which keeps the game runnable without the asset directory.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. The internal caches use standard Go
// maps. Load everything from the main goroutine (the game loop) only.
//
// Usage:
//
//	audioContext := audio.NewContext(48000)
//	rm := NewResourceManager(audioContext)
//	img, mask := rm.LoadSprite("assets/images/weapon/bullet.png", 24, 24, color.White)
type ResourceManager struct {
	imageCache      map[string]*ebiten.Image      // path -> GPU image
	maskCache       map[string]*utils.Mask        // path -> pixel mask
	silhouetteCache map[*utils.Mask]*ebiten.Image // mask -> white silhouette
	audioCache      map[string]*audio.Player      // path -> audio player
	fontFaceCache   map[string]text.Face          // "path:size" -> font face
	audioContext    *audio.Context                // global audio context, may be nil in headless runs
	missingLogged   map[string]bool               // paths already reported as missing
}

// NewResourceManager creates and initializes a new ResourceManager instance.
// The audioContext should be created once at game startup with a sample rate
// of 48000 Hz; passing nil disables audio loading (LoadAudio and
// LoadSoundEffect will return errors, image loading is unaffected).
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		imageCache:      make(map[string]*ebiten.Image),
		maskCache:       make(map[string]*utils.Mask),
		silhouetteCache: make(map[*utils.Mask]*ebiten.Image),
		audioCache:      make(map[string]*audio.Player),
		fontFaceCache:   make(map[string]text.Face),
		audioContext:    audioContext,
		missingLogged:   make(map[string]bool),
	}
}

// LoadImage loads an image file from the specified path and caches it for
// future use, along with the pixel mask derived from the same decoded data.
// If the image has already been loaded, it returns the cached version.
// Supported formats: PNG and JPEG.
//
// Returns an error if the file cannot be opened or decoded; use LoadSprite
// when a placeholder fallback is wanted instead of an error.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)

	rm.imageCache[path] = ebitenImg
	rm.maskCache[path] = utils.NewMaskFromImage(img)

	return ebitenImg, nil
}

// GetImage retrieves a previously loaded image from the cache.
// Returns nil if the image has not been loaded yet.
func (rm *ResourceManager) GetImage(path string) *ebiten.Image {
	return rm.imageCache[path]
}

// GetMask retrieves the pixel mask of a previously loaded image.
// Returns nil if the image has not been loaded yet.
func (rm *ResourceManager) GetMask(path string) *utils.Mask {
	return rm.maskCache[path]
}

// LoadSprite loads an image and its pixel mask, falling back to a solid-color
// placeholder of the given size when the file is missing or unreadable.
// The fallback is cached under the same path, so repeated calls stay cheap
// and the miss is logged only once.
func (rm *ResourceManager) LoadSprite(path string, fallbackW, fallbackH int, fallback color.Color) (*ebiten.Image, *utils.Mask) {
	if img, exists := rm.imageCache[path]; exists {
		return img, rm.maskCache[path]
	}

	img, err := rm.LoadImage(path)
	if err == nil {
		return img, rm.maskCache[path]
	}

	if !rm.missingLogged[path] {
		rm.missingLogged[path] = true
		log.Printf("[ResourceManager] Warning: %v (using %dx%d placeholder)", err, fallbackW, fallbackH)
	}

	placeholder := ebiten.NewImage(fallbackW, fallbackH)
	placeholder.Fill(fallback)
	mask := utils.NewFilledMask(fallbackW, fallbackH)

	rm.imageCache[path] = placeholder
	rm.maskCache[path] = mask

	return placeholder, mask
}

// SilhouetteImage returns a white-on-transparent image built from the given
// pixel mask. Used for the enemy death flash. The result is cached per mask,
// so enemies sharing frame data also share the silhouette image.
// Returns nil for a nil mask.
func (rm *ResourceManager) SilhouetteImage(mask *utils.Mask) *ebiten.Image {
	if mask == nil {
		return nil
	}
	if img, exists := rm.silhouetteCache[mask]; exists {
		return img
	}

	img := ebiten.NewImageFromImage(mask.Silhouette())
	rm.silhouetteCache[mask] = img
	return img
}

// LoadFont loads a TTF font face at the given size, cached per (path, size).
// When the font file is missing or unreadable the returned face is the
// built-in fixed-size bitmap face, so UI text stays visible without the
// asset directory.
func (rm *ResourceManager) LoadFont(path string, size float64) text.Face {
	cacheKey := fmt.Sprintf("%s:%.1f", path, size)
	if face, exists := rm.fontFaceCache[cacheKey]; exists {
		return face
	}

	face := rm.loadFontFace(path, size)
	rm.fontFaceCache[cacheKey] = face
	return face
}

func (rm *ResourceManager) loadFontFace(path string, size float64) text.Face {
	fontData, err := os.ReadFile(path)
	if err == nil {
		source, srcErr := text.NewGoTextFaceSource(bytes.NewReader(fontData))
		if srcErr == nil {
			return &text.GoTextFace{
				Source:    source,
				Size:      size,
				Direction: text.DirectionLeftToRight,
			}
		}
		err = srcErr
	}

	if !rm.missingLogged[path] {
		rm.missingLogged[path] = true
		log.Printf("[ResourceManager] Warning: font %s unavailable (%v), using built-in face", path, err)
	}
	return text.NewGoXFace(basicfont.Face7x13)
}

// LoadFrameDir loads every image in a directory as an animation frame slice,
// with masks aligned to the frames. Frame files named with numeric stems
// ("0.png" ... "11.png") are ordered numerically, everything else lexically.
// When the directory is missing or holds no images, a single placeholder
// frame of the given size is returned so animation code never sees an empty
// slice.
func (rm *ResourceManager) LoadFrameDir(dir string, fallbackW, fallbackH int, fallback color.Color) ([]*ebiten.Image, []*utils.Mask) {
	names := rm.listFrameFiles(dir)
	if len(names) == 0 {
		if !rm.missingLogged[dir] {
			rm.missingLogged[dir] = true
			log.Printf("[ResourceManager] Warning: no frames in %s (using placeholder)", dir)
		}
		img, mask := rm.LoadSprite(filepath.Join(dir, "placeholder"), fallbackW, fallbackH, fallback)
		return []*ebiten.Image{img}, []*utils.Mask{mask}
	}

	frames := make([]*ebiten.Image, 0, len(names))
	masks := make([]*utils.Mask, 0, len(names))
	for _, name := range names {
		img, mask := rm.LoadSprite(filepath.Join(dir, name), fallbackW, fallbackH, fallback)
		frames = append(frames, img)
		masks = append(masks, mask)
	}
	return frames, masks
}

// listFrameFiles 列出目录下的帧图片文件名并按帧序排序
func (rm *ResourceManager) listFrameFiles(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".png", ".jpg", ".jpeg":
			names = append(names, entry.Name())
		}
	}

	sort.Slice(names, func(i, j int) bool {
		return frameLess(names[i], names[j])
	})
	return names
}

// frameLess 帧文件排序：数字文件名按数值比较，否则按字典序
func frameLess(a, b string) bool {
	na, errA := strconv.Atoi(strings.TrimSuffix(a, filepath.Ext(a)))
	nb, errB := strconv.Atoi(strings.TrimSuffix(b, filepath.Ext(b)))
	if errA == nil && errB == nil {
		return na < nb
	}
	return a < b
}

// LoadAudio loads an audio file from the specified path and caches it for
// future use. If the audio has already been loaded, it returns the cached
// player. Supported formats: MP3 (.mp3) and OGG Vorbis (.ogg).
//
// The audio is automatically wrapped in an infinite loop, making it suitable
// for background music. For one-shot sound effects use LoadSoundEffect.
func (rm *ResourceManager) LoadAudio(path string) (*audio.Player, error) {
	if cachedPlayer, exists := rm.audioCache[path]; exists {
		return cachedPlayer, nil
	}
	if rm.audioContext == nil {
		return nil, fmt.Errorf("audio context is not initialized")
	}

	stream, err := rm.decodeAudioFile(path)
	if err != nil {
		return nil, err
	}

	// Wrap the stream in an infinite loop for background music
	loopStream := audio.NewInfiniteLoop(stream, stream.Length())

	player, err := rm.audioContext.NewPlayer(loopStream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}

	rm.audioCache[path] = player
	return player, nil
}

// LoadSoundEffect loads a sound effect from the specified path and caches it
// for future use. Unlike LoadAudio, this method does NOT wrap the audio in an
// infinite loop, making it suitable for one-shot effects like gunfire or
// hit feedback. Supported formats: MP3 (.mp3) and OGG Vorbis (.ogg).
func (rm *ResourceManager) LoadSoundEffect(path string) (*audio.Player, error) {
	if cachedPlayer, exists := rm.audioCache[path]; exists {
		return cachedPlayer, nil
	}
	if rm.audioContext == nil {
		return nil, fmt.Errorf("audio context is not initialized")
	}

	stream, err := rm.decodeAudioFile(path)
	if err != nil {
		return nil, err
	}

	player, err := rm.audioContext.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}

	rm.audioCache[path] = player
	return player, nil
}

// audioStream 解码后的音频流，Length 用于无缝循环
type audioStream interface {
	io.ReadSeeker
	Length() int64
}

// decodeAudioFile 读入整个音频文件并按扩展名解码
// 一次性读入内存，避免播放器长期持有文件句柄
func (rm *ResourceManager) decodeAudioFile(path string) (audioStream, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio file %s: %w", path, err)
	}
	defer file.Close()

	audioData, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}

	reader := bytes.NewReader(audioData)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".mp3":
		stream, err := mp3.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 audio %s: %w", path, err)
		}
		return stream, nil
	case ".ogg":
		stream, err := vorbis.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG audio %s: %w", path, err)
		}
		return stream, nil
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .mp3, .ogg)", ext)
	}
}

// GetAudioPlayer retrieves a previously loaded audio player from the cache.
// Returns nil if the audio has not been loaded yet.
func (rm *ResourceManager) GetAudioPlayer(path string) *audio.Player {
	return rm.audioCache[path]
}
