package config_test

import (
	"log/slog"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/scasm/config"
	"github.com/sarchlab/scasm/core"
)

var _ = Describe("Config", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	writeFile := func(content string) string {
		path := filepath.Join(dir, "scasm.yaml")
		Expect(os.WriteFile(path, []byte(content), 0o644)).To(Succeed())
		return path
	}

	It("should provide valid defaults", func() {
		cfg := config.Default()
		Expect(cfg.Validate()).To(Succeed())
		Expect(cfg.CacheSize).To(Equal(1024))
		Expect(cfg.Format).To(Equal(config.FormatTable))
	})

	It("should overlay a YAML file on the defaults", func() {
		cfg, err := config.LoadFile(writeFile("cache_size: 16\nformat: plain\n"))
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.CacheSize).To(Equal(16))
		Expect(cfg.Format).To(Equal(config.FormatPlain))
		Expect(cfg.LogLevel).To(Equal("info"))
	})

	It("should accept an empty file", func() {
		cfg, err := config.LoadFile(writeFile(""))
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg).To(Equal(config.Default()))
	})

	It("should reject unknown keys", func() {
		_, err := config.LoadFile(writeFile("colour: red\n"))
		Expect(err).To(HaveOccurred())
	})

	It("should report a missing file", func() {
		_, err := config.LoadFile(filepath.Join(dir, "missing.yaml"))
		Expect(err).To(MatchError(ContainSubstring("failed to read config file")))
	})

	It("should keep settings when no variables are set", func() {
		cfg := config.Config{CacheSize: 7, LogLevel: "debug", Format: config.FormatPlain}
		Expect(cfg.WithEnv()).To(Equal(cfg))
	})

	DescribeTable("log levels",
		func(name string, level slog.Level) {
			cfg := config.Default()
			cfg.LogLevel = name
			Expect(cfg.SlogLevel()).To(Equal(level))
		},
		Entry("debug", "debug", slog.LevelDebug),
		Entry("info", "INFO", slog.LevelInfo),
		Entry("warn", "warn", slog.LevelWarn),
		Entry("trace", "trace", core.LevelTrace),
	)

	It("should make trace the most verbose level", func() {
		cfg := config.Default()
		cfg.LogLevel = "trace"
		level, err := cfg.SlogLevel()
		Expect(err).NotTo(HaveOccurred())
		Expect(level).To(BeNumerically("<", slog.LevelDebug))

		cfg.LogLevel = "info"
		info, err := cfg.SlogLevel()
		Expect(err).NotTo(HaveOccurred())
		Expect(level).To(BeNumerically("<", info))
	})

	It("should reject invalid settings", func() {
		cfg := config.Default()
		cfg.LogLevel = "loud"
		Expect(cfg.Validate()).NotTo(Succeed())

		cfg = config.Default()
		cfg.Format = "html"
		Expect(cfg.Validate()).NotTo(Succeed())

		cfg = config.Default()
		cfg.CacheSize = -1
		Expect(cfg.Validate()).NotTo(Succeed())
	})
})
