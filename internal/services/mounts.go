package services

import (
	"bufio"
	"os"
	"sort"
	"strings"
)

const defaultMountTable = "/proc/mounts"

// Device prefixes presumed to back removable/external storage.
var externalDevPrefixes = []string{"/dev/sd", "/dev/mmcblk", "/dev/nvme"}

type ProcMounts struct {
	TablePath string
}

func NewProcMounts() ProcMounts {
	return ProcMounts{TablePath: defaultMountTable}
}

// External returns the mount points whose device looks external, sorted and
// deduplicated. Enumeration is advisory: an unreadable or malformed table
// yields an empty list, never an error.
func (mounts ProcMounts) External() []string {
	path := mounts.TablePath
	if path == "" {
		path = defaultMountTable
	}
	file, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer file.Close()

	seen := make(map[string]struct{})
	points := []string{}
	lines := bufio.NewScanner(file)
	for lines.Scan() {
		fields := strings.Fields(lines.Text())
		if len(fields) < 2 {
			continue
		}
		if !isExternalDevice(fields[0]) {
			continue
		}
		if _, ok := seen[fields[1]]; ok {
			continue
		}
		seen[fields[1]] = struct{}{}
		points = append(points, fields[1])
	}
	sort.Strings(points)
	return points
}

func isExternalDevice(device string) bool {
	for _, prefix := range externalDevPrefixes {
		if strings.HasPrefix(device, prefix) {
			return true
		}
	}
	return false
}
