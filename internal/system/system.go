// Package system probes the host: TTY availability, Docker tooling and
// hardware resources for template recommendations.
package system

import (
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"syscall"

	"github.com/kaspa-aio/kaspactl/internal/catalog"
)

func HasTTY() bool {
	f, err := os.Open("/dev/tty")
	if err != nil {
		return false
	}
	f.Close()
	return true
}

func IsDockerInstalled() bool {
	_, err := exec.LookPath("docker")
	return err == nil
}

func IsComposeAvailable() bool {
	cmd := exec.Command("docker", "compose", "version")
	return cmd.Run() == nil
}

// DetectResources reads what the host offers. Memory comes from
// /proc/meminfo, disk from statfs on dir; both report zero when the
// platform does not expose them, which recommendation scoring treats as
// insufficient rather than failing.
func DetectResources(dir string) catalog.SystemResources {
	res := catalog.SystemResources{
		CPUCores: float64(runtime.NumCPU()),
	}

	if data, err := os.ReadFile("/proc/meminfo"); err == nil {
		for _, line := range strings.Split(string(data), "\n") {
			if !strings.HasPrefix(line, "MemTotal:") {
				continue
			}
			fields := strings.Fields(line)
			if len(fields) >= 2 {
				if kb, err := strconv.ParseFloat(fields[1], 64); err == nil {
					res.MemoryGB = kb / (1024 * 1024)
				}
			}
			break
		}
	}

	var fs syscall.Statfs_t
	if err := syscall.Statfs(dir, &fs); err == nil {
		res.DiskGB = float64(fs.Bavail) * float64(fs.Bsize) / (1024 * 1024 * 1024)
	}

	return res
}
