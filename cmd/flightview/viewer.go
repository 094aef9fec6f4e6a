package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"flightview/internal/app"
	"flightview/internal/pilot"
	"flightview/internal/render"
	"flightview/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

var (
	vertexShaderSource = `
		#version 410
		in vec2 vp;
		in vec3 vc;
		uniform mat4 projection;
		out vec3 colour;
		void main() {
			colour = vc;
			gl_Position = projection * vec4(vp, 0.0, 1.0);
		}
	` + "\x00"

	fragmentShaderSource = `
		#version 410
		in vec3 colour;
		out vec4 frag_colour;
		void main() {
			frag_colour = vec4(colour, 1.0);
		}
	` + "\x00"
)

// floats per vertex: x, y, r, g, b
const vertexStride = 5

func runWindow(a *app.App) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	width, height := a.Screen()
	title := a.Config.Screen.Title
	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return err
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return err
	}
	a.Log.Info("opengl ready", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	program, err := newProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return err
	}
	gl.UseProgram(program)

	// Pixel coordinates with y growing downwards, as the projector emits them.
	projection := mgl32.Ortho2D(0, float32(width), float32(height), 0)
	projectionUniform := gl.GetUniformLocation(program, gl.Str("projection\x00"))
	gl.UniformMatrix4fv(projectionUniform, 1, false, &projection[0])

	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	posAttrib := uint32(gl.GetAttribLocation(program, gl.Str("vp\x00")))
	gl.EnableVertexAttribArray(posAttrib)
	gl.VertexAttribPointer(posAttrib, 2, gl.FLOAT, false, vertexStride*4, gl.PtrOffset(0))

	colAttrib := uint32(gl.GetAttribLocation(program, gl.Str("vc\x00")))
	gl.EnableVertexAttribArray(colAttrib)
	gl.VertexAttribPointer(colAttrib, 3, gl.FLOAT, false, vertexStride*4, gl.PtrOffset(2*4))

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeyEscape:
			w.SetShouldClose(true)
		case glfw.KeyX:
			a.Toggle("expand", scene.Toggler.ToggleExpand)
		case glfw.KeyC:
			a.Toggle("rotate", scene.Toggler.ToggleRotate)
		case glfw.KeyV:
			a.Toggle("sync", scene.Toggler.ToggleSync)
		}
	})

	bg := a.Background()
	gl.ClearColor(float32(bg.R)/255, float32(bg.G)/255, float32(bg.B)/255, 1.0)

	minFrame := time.Second / time.Duration(a.Config.Screen.FPS)
	lastFrameTime := glfw.GetTime()
	lastFpsTime := lastFrameTime
	frameCount := 0
	var vertices []float32

	for !window.ShouldClose() {
		frameStart := time.Now()

		currentTime := glfw.GetTime()
		deltaTime := currentTime - lastFrameTime
		lastFrameTime = currentTime

		a.Step(controls(window), deltaTime)
		out, ok := a.NextFrame(context.Background())
		if !ok {
			window.SwapBuffers()
			glfw.PollEvents()
			continue
		}

		frameCount++
		if currentTime-lastFpsTime >= 1.0 {
			window.SetTitle(hud(title, frameCount, out, a.Pilot, a.Drag()))
			frameCount = 0
			lastFpsTime = currentTime
		}

		gl.Clear(gl.COLOR_BUFFER_BIT)

		vertices = appendVertices(vertices[:0], out)
		if n := len(vertices) / vertexStride; n > 0 {
			gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
			gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.DYNAMIC_DRAW)
			gl.BindVertexArray(vao)
			gl.DrawArrays(gl.LINES, 0, int32(n))
		}

		window.SwapBuffers()
		glfw.PollEvents()

		if d := time.Since(frameStart); d < minFrame {
			time.Sleep(minFrame - d)
		}
	}
	return nil
}

// appendVertices flattens the frame's segments into the vertex layout the
// line shader reads.
func appendVertices(dst []float32, out render.Output) []float32 {
	for _, d := range out.Objects {
		r, g, b := float32(d.Colour.R)/255, float32(d.Colour.G)/255, float32(d.Colour.B)/255
		for _, s := range d.Segments {
			dst = append(dst,
				float32(s[0].X), float32(s[0].Y), r, g, b,
				float32(s[1].X), float32(s[1].Y), r, g, b,
			)
		}
	}
	return dst
}

func hud(title string, fps int, out render.Output, p *pilot.Pilot, drag float64) string {
	return fmt.Sprintf("%s | FPS: %d | lines: %d | pitch %.0f° heading %.0f° roll %.0f° | drag %.0f N",
		title, fps, out.Lines(),
		mgl64.RadToDeg(p.Angles.X), mgl64.RadToDeg(p.Angles.Z), mgl64.RadToDeg(p.Angles.Y), drag)
}

func controls(w *glfw.Window) pilot.Controls {
	return pilot.Controls{
		Pitch:   axis(w, glfw.KeyUp, glfw.KeyDown),
		Yaw:     axis(w, glfw.KeyLeft, glfw.KeyRight),
		Roll:    axis(w, glfw.KeyE, glfw.KeyQ),
		Forward: axis(w, glfw.KeyW, glfw.KeyS),
		Strafe:  axis(w, glfw.KeyD, glfw.KeyA),
		Lift:    axis(w, glfw.KeyR, glfw.KeyF),
	}
}

// axis is +1 while pos is held, -1 while neg is held and 0 for both or neither.
func axis(w *glfw.Window, pos, neg glfw.Key) float64 {
	v := 0.0
	if w.GetKey(pos) == glfw.Press {
		v++
	}
	if w.GetKey(neg) == glfw.Press {
		v--
	}
	return v
}

func newProgram(vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}

	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))

		return 0, fmt.Errorf("failed to link program: %v", log)
	}

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))

		return 0, fmt.Errorf("failed to compile %v: %v", source, log)
	}

	return shader, nil
}
