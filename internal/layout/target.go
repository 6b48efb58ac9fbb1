package layout

import "unsafe"

// Target describes the ABI target triple and its word properties.
type Target struct {
	Triple     string // e.g. "x86_64-linux-gnu"
	PtrSize    int    // bytes
	PtrAlign   int    // bytes
	Int64Align int    // bytes; 4 on 32-bit x86
}

func X86_64LinuxGNU() Target {
	return Target{
		Triple:     "x86_64-linux-gnu",
		PtrSize:    8,
		PtrAlign:   8,
		Int64Align: 8,
	}
}

func I386LinuxGNU() Target {
	return Target{
		Triple:     "i386-linux-gnu",
		PtrSize:    4,
		PtrAlign:   4,
		Int64Align: 4,
	}
}

// Host returns the target the running binary was built for.
func Host() Target {
	return Target{
		Triple:     "host",
		PtrSize:    int(unsafe.Sizeof(uintptr(0))),
		PtrAlign:   int(unsafe.Alignof(uintptr(0))),
		Int64Align: int(unsafe.Alignof(int64(0))),
	}
}

// TargetByName resolves a target name as accepted by the CLI.
func TargetByName(name string) (Target, bool) {
	switch name {
	case "", "host":
		return Host(), true
	case "x86_64-linux-gnu", "amd64":
		return X86_64LinuxGNU(), true
	case "i386-linux-gnu", "386":
		return I386LinuxGNU(), true
	default:
		return Target{}, false
	}
}
