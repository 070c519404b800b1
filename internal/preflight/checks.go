package preflight

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"fitframes/internal/fit2df"
	"fitframes/internal/fitdecode"
	"fitframes/internal/spatial"
)

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckFITFile verifies that path carries the .fit extension and is a
// readable regular file.
func CheckFITFile(name, path string) Result {
	if err := fit2df.CheckExtension(path); err != nil {
		return Result{Name: name, Detail: err.Error()}
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.Mode().IsRegular() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: not a regular file)", path)}
	}
	if err := unix.Access(path, unix.R_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: not readable: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%d bytes)", path, info.Size())}
}

// CheckFITIntegrity verifies every FIT sequence header and CRC in path.
func CheckFITIntegrity(name, path string) Result {
	seq, err := fitdecode.Verify(path)
	if err != nil {
		var decodeErr *fitdecode.DecodeError
		if errors.As(err, &decodeErr) {
			return Result{Name: name, Detail: fmt.Sprintf("corrupt after %d sequence(s): %v", seq, decodeErr.Err)}
		}
		return Result{Name: name, Detail: err.Error()}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%d sequence(s), checksums ok", seq)}
}

// CheckProjection verifies that PROJ can build the configured transformation.
func CheckProjection(name string, source, target int) Result {
	t, err := spatial.NewTransformer(source, target)
	if err != nil {
		return Result{Name: name, Detail: err.Error()}
	}
	t.Close()
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("EPSG:%d -> EPSG:%d", source, target)}
}
