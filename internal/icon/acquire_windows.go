//go:build windows

package icon

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	shell32 = windows.NewLazySystemDLL("shell32.dll")
	user32  = windows.NewLazySystemDLL("user32.dll")
	gdi32   = windows.NewLazySystemDLL("gdi32.dll")

	procSHGetFileInfoW     = shell32.NewProc("SHGetFileInfoW")
	procGetIconInfo        = user32.NewProc("GetIconInfo")
	procDestroyIcon        = user32.NewProc("DestroyIcon")
	procCreateCompatibleDC = gdi32.NewProc("CreateCompatibleDC")
	procDeleteDC           = gdi32.NewProc("DeleteDC")
	procDeleteObject       = gdi32.NewProc("DeleteObject")
	procGetDIBits          = gdi32.NewProc("GetDIBits")
)

const (
	shgfiIcon      = 0x000000100
	shgfiLargeIcon = 0x000000000
	shgfiSmallIcon = 0x000000001

	dibRGBColors = 0
	biRGB        = 0
)

type shFileInfo struct {
	HIcon         windows.Handle
	IIcon         int32
	DwAttributes  uint32
	SzDisplayName [260]uint16
	SzTypeName    [80]uint16
}

type iconInfo struct {
	FIcon    int32
	XHotspot uint32
	YHotspot uint32
	HbmMask  windows.Handle
	HbmColor windows.Handle
}

type bitmapInfoHeader struct {
	Size          uint32
	Width         int32
	Height        int32
	Planes        uint16
	BitCount      uint16
	Compression   uint32
	SizeImage     uint32
	XPelsPerMeter int32
	YPelsPerMeter int32
	ClrUsed       uint32
	ClrImportant  uint32
}

type bitmapInfo struct {
	Header bitmapInfoHeader
	// Room for the color masks GetDIBits may write for non-BI_RGB
	// formats during the header query.
	Colors [3]uint32
}

type shellAcquirer struct{}

// NewAcquirer returns the native Windows shell acquirer.
func NewAcquirer() Acquirer {
	return shellAcquirer{}
}

// Acquire asks the shell for the path's icon at the requested size and
// converts it to a canonical RGBA buffer. The icon handle is destroyed
// before returning on every path past acquisition.
func (shellAcquirer) Acquire(path string, size Size) (*Acquisition, error) {
	wide, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return nil, err
	}

	flags := uintptr(shgfiIcon)
	if size == SizeSmall {
		flags |= shgfiSmallIcon
	} else {
		flags |= shgfiLargeIcon
	}

	var sfi shFileInfo
	ret, _, _ := procSHGetFileInfoW.Call(
		uintptr(unsafe.Pointer(wide)),
		0,
		uintptr(unsafe.Pointer(&sfi)),
		unsafe.Sizeof(sfi),
		flags,
	)
	if ret == 0 {
		return nil, ErrIconNotFound
	}
	if sfi.HIcon == 0 {
		return nil, ErrNullHandle
	}
	defer procDestroyIcon.Call(uintptr(sfi.HIcon))

	img, err := iconToRGBA(sfi.HIcon)
	if err != nil {
		return nil, err
	}
	return &Acquisition{Image: img}, nil
}

// iconToRGBA extracts the icon's color bitmap as 32bpp pixels and
// normalizes them. All GDI handles are released on every exit path.
func iconToRGBA(hicon windows.Handle) (*RGBA, error) {
	var ii iconInfo
	ret, _, _ := procGetIconInfo.Call(uintptr(hicon), uintptr(unsafe.Pointer(&ii)))
	if ret == 0 {
		return nil, ErrInfoQuery
	}
	defer procDeleteObject.Call(uintptr(ii.HbmMask))
	defer procDeleteObject.Call(uintptr(ii.HbmColor))

	hdc, _, _ := procCreateCompatibleDC.Call(0)
	if hdc == 0 {
		return nil, ErrInfoQuery
	}
	defer procDeleteDC.Call(hdc)

	var bmi bitmapInfo
	bmi.Header.Size = uint32(unsafe.Sizeof(bmi.Header))

	// Header-only query to learn dimensions and row order.
	ret, _, _ = procGetDIBits.Call(hdc, uintptr(ii.HbmColor), 0, 0, 0,
		uintptr(unsafe.Pointer(&bmi)), dibRGBColors)
	if ret == 0 {
		return nil, ErrInfoQuery
	}

	width := int(bmi.Header.Width)
	rawHeight := int(bmi.Header.Height)
	// A negative height means the bitmap rows are stored top-down.
	topDown := rawHeight < 0
	height := rawHeight
	if height < 0 {
		height = -height
	}
	if width <= 0 || height == 0 {
		return nil, ErrInfoQuery
	}

	bmi.Header.BitCount = 32
	bmi.Header.Compression = biRGB
	bmi.Header.SizeImage = 0

	buf := make([]byte, width*height*4)
	ret, _, _ = procGetDIBits.Call(hdc, uintptr(ii.HbmColor), 0, uintptr(height),
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(unsafe.Pointer(&bmi)), dibRGBColors)
	if ret == 0 {
		return nil, ErrPixelRead
	}

	return normalizeDIB(buf, width, height, topDown)
}
