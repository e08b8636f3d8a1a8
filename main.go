package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/profile"
	"github.com/samuelyuan/go-darknebula/config"
	"github.com/samuelyuan/go-darknebula/render"
	"github.com/samuelyuan/go-darknebula/render/gldriver"
	"github.com/samuelyuan/go-darknebula/scene"
)

const (
	engineName    = "Dark Nebula"
	engineVersion = "0.0.0.0"
)

// engine owns the camera and the scene for the lifetime of the window
type engine struct {
	cfg           config.Config
	windowHandler *WindowHandler
	camera        *render.Camera
	scene         scene.Scene
}

func init() {
	// GL and glfw calls must come from the main thread
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "darknebula.yaml", "path to the engine configuration")
	profileMode := flag.String("profile", "", "write a cpu or mem profile")
	printShader := flag.Bool("print-shader", false, "print the scene program's active resources")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *profileMode != "" {
		cfg.Profile = *profileMode
		if err := cfg.Validate(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	logger, err := newLogger(cfg, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	slog.SetDefault(logger)

	slog.Info("Starting engine", slog.String("name", engineName), slog.String("version", engineVersion))

	if err := run(cfg, *printShader); err != nil {
		slog.Error("Engine stopped", slog.Any("err", err))
		os.Exit(1)
	}
}

func newLogger(cfg config.Config, w io.Writer) (*slog.Logger, error) {
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, err
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{AddSource: true, Level: level})
	return slog.New(handler), nil
}

func run(cfg config.Config, printShader bool) error {
	switch cfg.Profile {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("initialize glfw: %w", err)
	}
	defer glfw.Terminate()

	windowHandler, err := NewWindowHandler(cfg.Window)
	if err != nil {
		return err
	}
	defer windowHandler.destroy()

	driver, err := gldriver.New()
	if err != nil {
		return err
	}

	engineScene := scene.NewEngineScene(driver, scene.ShaderFiles{
		Vertex:   cfg.Shaders.Vertex,
		Fragment: cfg.Shaders.Fragment,
	})
	defer engineScene.Close()

	e := &engine{
		cfg:           cfg,
		windowHandler: windowHandler,
		camera:        newCamera(cfg),
		scene:         engineScene,
	}

	if err := e.scene.Init(e.camera); err != nil {
		return err
	}
	if printShader {
		program := engineScene.Program()
		program.PrintActiveUniforms(os.Stdout)
		program.PrintActiveUniformBlocks(os.Stdout)
		program.PrintActiveAttributes(os.Stdout)
	}

	windowHandler.setResizeHandler(func(width, height int) {
		e.scene.Resize(e.camera, width, height)
	})
	width, height := windowHandler.framebufferSize()
	e.scene.Resize(e.camera, width, height)

	return e.mainLoop()
}

func (e *engine) mainLoop() error {
	for !e.windowHandler.shouldClose() {
		e.windowHandler.startFrame()
		dt := float32(e.windowHandler.getTimeSinceLastFrame())

		applyControls(e.camera, e.scene, e.windowHandler.inputHandler, dt, e.cfg)
		e.scene.Update(dt)

		if err := e.scene.Render(e.camera); err != nil {
			return err
		}
	}
	return nil
}
