package benchmark

import (
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// Machine describes the host the benchmarks ran on.
type Machine struct {
	Hostname      string `yaml:"hostname"`
	OS            string `yaml:"os"`
	Platform      string `yaml:"platform"`
	CPUModel      string `yaml:"cpu_model"`
	LogicalCores  int    `yaml:"logical_cores"`
	MemoryTotalMB uint64 `yaml:"memory_total_mb"`
}

func probeMachine() (Machine, error) {
	var machine Machine

	if info, err := host.Info(); err == nil {
		machine.Hostname = info.Hostname
		machine.OS = info.OS
		machine.Platform = info.Platform
	}

	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		machine.CPUModel = infos[0].ModelName
	}
	if count, err := cpu.Counts(true); err == nil {
		machine.LogicalCores = count
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		machine.MemoryTotalMB = vm.Total / 1024 / 1024
	}

	return machine, nil
}
