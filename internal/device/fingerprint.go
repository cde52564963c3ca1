// Package device identifies the terminal that issues records.
package device

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"runtime"
	"strings"

	"github.com/denisbrodbeck/machineid"
	"github.com/jaypipes/ghw"
	"github.com/rs/zerolog"
)

const (
	appID   = "qrinv"
	Unknown = "unknown"
)

// TerminalInfo describes the issuing terminal.
type TerminalInfo struct {
	TerminalID  string            // hash of machine and hardware identifiers
	Platform    string            // OS/arch
	Fingerprint map[string]string // Additional hardware data
}

type hardware struct {
	cpuModel    string
	cpuVendor   string
	totalMemory int64
}

// Fingerprinter generates terminal-specific information
type Fingerprinter struct {
	logger    zerolog.Logger
	machineID func() (string, error)
	hardware  func() (hardware, error)
}

func New(logger zerolog.Logger) *Fingerprinter {
	return &Fingerprinter{
		logger: logger,
		machineID: func() (string, error) {
			// Scoped to this app so the raw machine id never leaves the host.
			return machineid.ProtectedID(appID)
		},
		hardware: readHardware,
	}
}

// Info collects hardware-specific information
func (f *Fingerprinter) Info() (TerminalInfo, error) {
	machineID, err := f.machineID()
	if err != nil {
		return TerminalInfo{}, fmt.Errorf("failed to get machine ID: %w", err)
	}

	hw, err := f.hardware()
	if err != nil {
		return TerminalInfo{}, fmt.Errorf("failed to get hardware info: %w", err)
	}

	hashInput := []string{
		machineID,
		hw.cpuModel,
		fmt.Sprintf("%d", hw.totalMemory),
		runtime.GOOS,
		runtime.GOARCH,
	}

	return TerminalInfo{
		TerminalID: generateHash(strings.Join(hashInput, "|")),
		Platform:   fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
		Fingerprint: map[string]string{
			"cpu_model":    hw.cpuModel,
			"cpu_vendor":   hw.cpuVendor,
			"total_memory": fmt.Sprintf("%d", hw.totalMemory),
		},
	}, nil
}

// TerminalID returns the terminal hash, or Unknown when the host does not
// expose the identifiers. It never fails a build.
func (f *Fingerprinter) TerminalID() string {
	info, err := f.Info()
	if err != nil {
		f.logger.Warn().Err(err).Msg("terminal fingerprint unavailable")
		return Unknown
	}
	return info.TerminalID
}

func readHardware() (hardware, error) {
	cpu, err := ghw.CPU()
	if err != nil {
		return hardware{}, fmt.Errorf("failed to get CPU info: %w", err)
	}
	memory, err := ghw.Memory()
	if err != nil {
		return hardware{}, fmt.Errorf("failed to get memory info: %w", err)
	}

	hw := hardware{totalMemory: memory.TotalPhysicalBytes}
	if len(cpu.Processors) > 0 {
		hw.cpuModel = cpu.Processors[0].Model
		hw.cpuVendor = cpu.Processors[0].Vendor
	}
	return hw, nil
}

func generateHash(input string) string {
	hash := sha256.Sum256([]byte(input))
	return hex.EncodeToString(hash[:])
}
