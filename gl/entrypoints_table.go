// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Code generated from the entrypoint list. Keep in sync with the handlers in
// package replay.

package gl

// Entrypoints known to the replayer. The order is the wire order of the
// packet entrypoint id.
const (
	InvalidEntrypoint Entrypoint = iota
	XCreateContext
	XCreateContextAttribsARB
	XCreateNewContext
	XMakeCurrent
	XMakeContextCurrent
	XDestroyContext
	XSwapBuffers
	InternalTraceCommandRAD
	GetError
	GetIntegerv
	GetFloatv
	GetBooleanv
	GetString
	IsEnabled
	Finish
	Flush
	Enable
	Disable
	Viewport
	Scissor
	ClearColor
	ClearDepth
	ClearStencil
	Clear
	DepthFunc
	DepthMask
	ColorMask
	BlendFunc
	CullFace
	FrontFace
	LineWidth
	PointSize
	PolygonMode
	PolygonStipple
	ShadeModel
	Hint
	PixelStorei
	DrawBuffer
	ReadBuffer
	DrawBuffers
	ActiveTexture
	ClientActiveTexture
	MatrixMode
	LoadIdentity
	LoadMatrixf
	MultMatrixf
	PushMatrix
	PopMatrix
	Translatef
	Scalef
	Rotatef
	Ortho
	Frustum
	TexEnvi
	TexEnvf
	TexEnvfv
	Lightf
	Lightfv
	LightModelfv
	Materialf
	Materialfv
	Begin
	End
	Vertex2f
	Vertex3f
	Color3f
	Color4f
	Color4ub
	Normal3f
	TexCoord2f
	MultiTexCoord2f
	VertexAttrib4f
	DrawPixels
	ReadPixels
	GenLists
	NewList
	EndList
	CallList
	CallLists
	ListBase
	DeleteLists
	IsList
	FeedbackBuffer
	SelectBuffer
	RenderMode
	InitNames
	PushName
	PopName
	LoadName
	GenTextures
	CreateTextures
	DeleteTextures
	BindTexture
	IsTexture
	TexImage2D
	TexImage3D
	TexSubImage2D
	TexStorage2D
	TexParameteri
	TexParameterf
	TexParameteriv
	TexParameterfv
	GetTexParameteriv
	GetTexLevelParameteriv
	GetTexImage
	GenerateMipmap
	GenBuffers
	CreateBuffers
	DeleteBuffers
	BindBuffer
	BindBufferBase
	BindBufferRange
	IsBuffer
	BufferData
	BufferSubData
	GetBufferSubData
	MapBuffer
	MapBufferRange
	UnmapBuffer
	FlushMappedBufferRange
	GetBufferParameteriv
	CopyBufferSubData
	GenVertexArrays
	DeleteVertexArrays
	BindVertexArray
	IsVertexArray
	VertexAttribPointer
	VertexAttribIPointer
	EnableVertexAttribArray
	DisableVertexAttribArray
	VertexAttribDivisor
	GetVertexAttribiv
	VertexPointer
	NormalPointer
	ColorPointer
	TexCoordPointer
	EnableClientState
	DisableClientState
	DrawArrays
	DrawArraysInstanced
	DrawElements
	DrawRangeElements
	DrawElementsInstanced
	DrawElementsBaseVertex
	GenFramebuffers
	DeleteFramebuffers
	BindFramebuffer
	IsFramebuffer
	CheckFramebufferStatus
	FramebufferTexture
	FramebufferTexture2D
	FramebufferTextureLayer
	FramebufferRenderbuffer
	GetFramebufferAttachmentParameteriv
	BlitFramebuffer
	GenRenderbuffers
	DeleteRenderbuffers
	BindRenderbuffer
	IsRenderbuffer
	RenderbufferStorage
	RenderbufferStorageMultisample
	GetRenderbufferParameteriv
	GenSamplers
	DeleteSamplers
	BindSampler
	IsSampler
	SamplerParameteri
	SamplerParameterf
	GetSamplerParameteriv
	GenQueries
	DeleteQueries
	BeginQuery
	EndQuery
	IsQuery
	QueryCounter
	GetQueryObjectiv
	GetQueryObjectuiv
	CreateShader
	ShaderSource
	CompileShader
	DeleteShader
	GetShaderiv
	IsShader
	CreateProgram
	CreateShaderProgramv
	AttachShader
	DetachShader
	BindAttribLocation
	LinkProgram
	ValidateProgram
	UseProgram
	DeleteProgram
	GetProgramiv
	IsProgram
	ProgramParameteri
	GetUniformLocation
	GetAttribLocation
	Uniform1i
	Uniform1f
	Uniform2f
	Uniform3f
	Uniform4f
	Uniform1iv
	Uniform4fv
	UniformMatrix4fv
	ProgramUniform1i
	ProgramUniform4fv
	GetUniformiv
	GenProgramPipelines
	DeleteProgramPipelines
	BindProgramPipeline
	IsProgramPipeline
	UseProgramStages
	ActiveShaderProgram
	GenProgramsARB
	DeleteProgramsARB
	BindProgramARB
	IsProgramARB
	ProgramStringARB
	ProgramEnvParameter4fARB
	ProgramLocalParameter4fARB
	FenceSync
	DeleteSync
	IsSync
	ClientWaitSync
	WaitSync
	GetSynciv
	GetShaderSource
	GetAttachedShaders
	GetActiveUniform
	GetUniformfv
	ProgramUniform1iv
	ProgramUniform1fv
	ProgramUniform2fv
	ProgramUniform3fv
	ProgramUniformMatrix4fv
	GetProgramivARB
	GetProgramStringARB
	GetProgramLocalParameterfvARB
	GetProgramEnvParameterfvARB
	GetProgramPipelineiv
	GetVertexAttribPointerv
	GetVertexAttribfv
	GetPointerv
	GetLightfv
	GetMaterialfv
	GetTexEnvfv
	RasterPos2i
	BlendEquation
	StencilFunc
	LightModelf
	StencilOp
	StencilMask
	StencilFuncSeparate
	StencilOpSeparate
	StencilMaskSeparate
	BlendFuncSeparate
	BlendEquationSeparate
	BlendColor
	PolygonOffset
	DepthRange
	DepthRangef
	ClearDepthf
	SampleCoverage
	LogicOp
	PrimitiveRestartIndex
	PointParameterf
	Uniform2i
	Uniform3i
	Uniform4i
	Uniform2iv
	Uniform3iv
	Uniform4iv
	Uniform1fv
	Uniform2fv
	Uniform3fv
	UniformMatrix2fv
	UniformMatrix3fv
	ProgramUniformMatrix3fv
	GetUniformBlockIndex
	UniformBlockBinding
	GetShaderInfoLog
	GetProgramInfoLog
	BindFragDataLocation
	TexSubImage3D
	TexStorage3D
	CompressedTexImage2D
	CompressedTexSubImage2D
	CopyTexImage2D
	CopyTexSubImage2D
	ClearBufferfv
	Vertex3fv
	Color4fv
	Normal3fv
	VertexAttrib4fv

	EntrypointCount = iota
)

var descriptors = [EntrypointCount]Descriptor{
	XCreateContext: {Name: "glXCreateContext", Params: []Param{pPtr("dpy"), pPtr("vis"), pContext("shareList"), pInt("direct")}, Return: ParamContext, ReturnNamespace: Contexts, Flags: FlagCreateContext},
	XCreateContextAttribsARB: {Name: "glXCreateContextAttribsARB", Params: []Param{pPtr("dpy"), pPtr("config"), pContext("share_context"), pInt("direct"), pIn("attrib_list")}, Return: ParamContext, ReturnNamespace: Contexts, Flags: FlagCreateContext},
	XCreateNewContext: {Name: "glXCreateNewContext", Params: []Param{pPtr("dpy"), pPtr("config"), pEnum("render_type"), pContext("share_list"), pInt("direct")}, Return: ParamContext, ReturnNamespace: Contexts, Flags: FlagCreateContext},
	XMakeCurrent: {Name: "glXMakeCurrent", Params: []Param{pPtr("dpy"), pPtr("drawable"), pContext("ctx")}, Return: ParamInt, Flags: FlagMakeCurrent},
	XMakeContextCurrent: {Name: "glXMakeContextCurrent", Params: []Param{pPtr("dpy"), pPtr("draw"), pPtr("read"), pContext("ctx")}, Return: ParamInt, Flags: FlagMakeCurrent},
	XDestroyContext: {Name: "glXDestroyContext", Params: []Param{pPtr("dpy"), pContext("ctx")}, Flags: FlagDestroyContext},
	XSwapBuffers: {Name: "glXSwapBuffers", Params: []Param{pPtr("dpy"), pPtr("drawable")}, Flags: FlagSwap},
	InternalTraceCommandRAD: {Name: "glInternalTraceCommandRAD", Params: []Param{pInt("cmd"), pInt("size"), pIn("data")}, Flags: FlagInternal},
	GetError: {Name: "glGetError", Return: ParamEnum, Flags: FlagCheckReturn},
	GetIntegerv: {Name: "glGetIntegerv", Params: []Param{pEnum("pname"), pOut("data")}, Flags: FlagCheckOutputs},
	GetFloatv: {Name: "glGetFloatv", Params: []Param{pEnum("pname"), pOut("data")}},
	GetBooleanv: {Name: "glGetBooleanv", Params: []Param{pEnum("pname"), pOut("data")}},
	GetString: {Name: "glGetString", Params: []Param{pEnum("name")}, Return: ParamPtr},
	IsEnabled: {Name: "glIsEnabled", Params: []Param{pEnum("cap")}, Return: ParamInt, Flags: FlagCheckReturn},
	Finish: {Name: "glFinish"},
	Flush: {Name: "glFlush"},
	Enable: {Name: "glEnable", Params: []Param{pEnum("cap")}, Flags: FlagListable},
	Disable: {Name: "glDisable", Params: []Param{pEnum("cap")}, Flags: FlagListable},
	Viewport: {Name: "glViewport", Params: []Param{pInt("x"), pInt("y"), pInt("width"), pInt("height")}, Flags: FlagListable},
	Scissor: {Name: "glScissor", Params: []Param{pInt("x"), pInt("y"), pInt("width"), pInt("height")}, Flags: FlagListable},
	ClearColor: {Name: "glClearColor", Params: []Param{pFloat("red"), pFloat("green"), pFloat("blue"), pFloat("alpha")}, Flags: FlagListable},
	ClearDepth: {Name: "glClearDepth", Params: []Param{pFloat("depth")}, Flags: FlagListable},
	ClearStencil: {Name: "glClearStencil", Params: []Param{pInt("s")}, Flags: FlagListable},
	Clear: {Name: "glClear", Params: []Param{pInt("mask")}, Flags: FlagClear | FlagListable},
	DepthFunc: {Name: "glDepthFunc", Params: []Param{pEnum("func")}, Flags: FlagListable},
	DepthMask: {Name: "glDepthMask", Params: []Param{pInt("flag")}, Flags: FlagListable},
	ColorMask: {Name: "glColorMask", Params: []Param{pInt("red"), pInt("green"), pInt("blue"), pInt("alpha")}, Flags: FlagListable},
	BlendFunc: {Name: "glBlendFunc", Params: []Param{pEnum("sfactor"), pEnum("dfactor")}, Flags: FlagListable},
	CullFace: {Name: "glCullFace", Params: []Param{pEnum("mode")}, Flags: FlagListable},
	FrontFace: {Name: "glFrontFace", Params: []Param{pEnum("mode")}, Flags: FlagListable},
	LineWidth: {Name: "glLineWidth", Params: []Param{pFloat("width")}, Flags: FlagListable},
	PointSize: {Name: "glPointSize", Params: []Param{pFloat("size")}, Flags: FlagListable},
	PolygonMode: {Name: "glPolygonMode", Params: []Param{pEnum("face"), pEnum("mode")}, Flags: FlagListable},
	PolygonStipple: {Name: "glPolygonStipple", Params: []Param{pIn("mask")}, Flags: FlagListable},
	ShadeModel: {Name: "glShadeModel", Params: []Param{pEnum("mode")}, Flags: FlagListable},
	Hint: {Name: "glHint", Params: []Param{pEnum("target"), pEnum("mode")}, Flags: FlagListable},
	PixelStorei: {Name: "glPixelStorei", Params: []Param{pEnum("pname"), pInt("param")}},
	DrawBuffer: {Name: "glDrawBuffer", Params: []Param{pEnum("mode")}, Flags: FlagListable},
	ReadBuffer: {Name: "glReadBuffer", Params: []Param{pEnum("mode")}, Flags: FlagListable},
	DrawBuffers: {Name: "glDrawBuffers", Params: []Param{pInt("n"), pIn("bufs")}},
	ActiveTexture: {Name: "glActiveTexture", Params: []Param{pEnum("texture")}, Flags: FlagListable},
	ClientActiveTexture: {Name: "glClientActiveTexture", Params: []Param{pEnum("texture")}},
	MatrixMode: {Name: "glMatrixMode", Params: []Param{pEnum("mode")}, Flags: FlagListable},
	LoadIdentity: {Name: "glLoadIdentity", Flags: FlagListable},
	LoadMatrixf: {Name: "glLoadMatrixf", Params: []Param{pIn("m")}, Flags: FlagListable},
	MultMatrixf: {Name: "glMultMatrixf", Params: []Param{pIn("m")}, Flags: FlagListable},
	PushMatrix: {Name: "glPushMatrix", Flags: FlagListable},
	PopMatrix: {Name: "glPopMatrix", Flags: FlagListable},
	Translatef: {Name: "glTranslatef", Params: []Param{pFloat("x"), pFloat("y"), pFloat("z")}, Flags: FlagListable},
	Scalef: {Name: "glScalef", Params: []Param{pFloat("x"), pFloat("y"), pFloat("z")}, Flags: FlagListable},
	Rotatef: {Name: "glRotatef", Params: []Param{pFloat("angle"), pFloat("x"), pFloat("y"), pFloat("z")}, Flags: FlagListable},
	Ortho: {Name: "glOrtho", Params: []Param{pFloat("left"), pFloat("right"), pFloat("bottom"), pFloat("top"), pFloat("zNear"), pFloat("zFar")}, Flags: FlagListable},
	Frustum: {Name: "glFrustum", Params: []Param{pFloat("left"), pFloat("right"), pFloat("bottom"), pFloat("top"), pFloat("zNear"), pFloat("zFar")}, Flags: FlagListable},
	TexEnvi: {Name: "glTexEnvi", Params: []Param{pEnum("target"), pEnum("pname"), pInt("param")}, Flags: FlagListable},
	TexEnvf: {Name: "glTexEnvf", Params: []Param{pEnum("target"), pEnum("pname"), pFloat("param")}, Flags: FlagListable},
	TexEnvfv: {Name: "glTexEnvfv", Params: []Param{pEnum("target"), pEnum("pname"), pIn("params")}, Flags: FlagListable},
	Lightf: {Name: "glLightf", Params: []Param{pEnum("light"), pEnum("pname"), pFloat("param")}, Flags: FlagListable},
	Lightfv: {Name: "glLightfv", Params: []Param{pEnum("light"), pEnum("pname"), pIn("params")}, Flags: FlagListable},
	LightModelfv: {Name: "glLightModelfv", Params: []Param{pEnum("pname"), pIn("params")}, Flags: FlagListable},
	Materialf: {Name: "glMaterialf", Params: []Param{pEnum("face"), pEnum("pname"), pFloat("param")}, Flags: FlagListable},
	Materialfv: {Name: "glMaterialfv", Params: []Param{pEnum("face"), pEnum("pname"), pIn("params")}, Flags: FlagListable},
	Begin: {Name: "glBegin", Params: []Param{pEnum("mode")}, Flags: FlagBegin | FlagListable},
	End: {Name: "glEnd", Flags: FlagEnd | FlagListable},
	Vertex2f: {Name: "glVertex2f", Params: []Param{pFloat("x"), pFloat("y")}, Flags: FlagListable},
	Vertex3f: {Name: "glVertex3f", Params: []Param{pFloat("x"), pFloat("y"), pFloat("z")}, Flags: FlagListable},
	Color3f: {Name: "glColor3f", Params: []Param{pFloat("red"), pFloat("green"), pFloat("blue")}, Flags: FlagListable},
	Color4f: {Name: "glColor4f", Params: []Param{pFloat("red"), pFloat("green"), pFloat("blue"), pFloat("alpha")}, Flags: FlagListable},
	Color4ub: {Name: "glColor4ub", Params: []Param{pInt("red"), pInt("green"), pInt("blue"), pInt("alpha")}, Flags: FlagListable},
	Normal3f: {Name: "glNormal3f", Params: []Param{pFloat("nx"), pFloat("ny"), pFloat("nz")}, Flags: FlagListable},
	TexCoord2f: {Name: "glTexCoord2f", Params: []Param{pFloat("s"), pFloat("t")}, Flags: FlagListable},
	MultiTexCoord2f: {Name: "glMultiTexCoord2f", Params: []Param{pEnum("target"), pFloat("s"), pFloat("t")}, Flags: FlagListable},
	VertexAttrib4f: {Name: "glVertexAttrib4f", Params: []Param{pInt("index"), pFloat("x"), pFloat("y"), pFloat("z"), pFloat("w")}, Flags: FlagListable},
	DrawPixels: {Name: "glDrawPixels", Params: []Param{pInt("width"), pInt("height"), pEnum("format"), pEnum("type"), pData("pixels")}, Flags: FlagListable},
	ReadPixels: {Name: "glReadPixels", Params: []Param{pInt("x"), pInt("y"), pInt("width"), pInt("height"), pEnum("format"), pEnum("type"), pOut("pixels")}},
	GenLists: {Name: "glGenLists", Params: []Param{pInt("range")}, Return: ParamHandle, ReturnNamespace: Lists, Flags: FlagCreate},
	NewList: {Name: "glNewList", Params: []Param{pHandle("list", Lists), pEnum("mode")}},
	EndList: {Name: "glEndList"},
	CallList: {Name: "glCallList", Params: []Param{pHandle("list", Lists)}, Flags: FlagListable},
	CallLists: {Name: "glCallLists", Params: []Param{pInt("n"), pEnum("type"), pHandles("lists", Lists)}, Flags: FlagListable},
	ListBase: {Name: "glListBase", Params: []Param{pInt("base")}, Flags: FlagListable},
	DeleteLists: {Name: "glDeleteLists", Params: []Param{pHandle("list", Lists), pInt("range")}, Flags: FlagDelete},
	IsList: {Name: "glIsList", Params: []Param{pHandle("list", Lists)}, Return: ParamInt, Flags: FlagCheckReturn},
	FeedbackBuffer: {Name: "glFeedbackBuffer", Params: []Param{pInt("size"), pEnum("type"), pPtr("buffer")}},
	SelectBuffer: {Name: "glSelectBuffer", Params: []Param{pInt("size"), pPtr("buffer")}},
	RenderMode: {Name: "glRenderMode", Params: []Param{pEnum("mode")}, Return: ParamInt, Flags: FlagCheckReturn},
	InitNames: {Name: "glInitNames", Flags: FlagListable},
	PushName: {Name: "glPushName", Params: []Param{pInt("name")}, Flags: FlagListable},
	PopName: {Name: "glPopName", Flags: FlagListable},
	LoadName: {Name: "glLoadName", Params: []Param{pInt("name")}, Flags: FlagListable},
	GenTextures: {Name: "glGenTextures", Params: []Param{pInt("n"), pHandlesOut("textures", Textures)}, Flags: FlagGen},
	CreateTextures: {Name: "glCreateTextures", Params: []Param{pEnum("target"), pInt("n"), pHandlesOut("textures", Textures)}, Flags: FlagGen},
	DeleteTextures: {Name: "glDeleteTextures", Params: []Param{pInt("n"), pHandles("textures", Textures)}, Flags: FlagDelete},
	BindTexture: {Name: "glBindTexture", Params: []Param{pEnum("target"), pHandle("texture", Textures)}, Flags: FlagBind | FlagListable},
	IsTexture: {Name: "glIsTexture", Params: []Param{pHandle("texture", Textures)}, Return: ParamInt, Flags: FlagCheckReturn},
	TexImage2D: {Name: "glTexImage2D", Params: []Param{pEnum("target"), pInt("level"), pInt("internalformat"), pInt("width"), pInt("height"), pInt("border"), pEnum("format"), pEnum("type"), pData("pixels")}, Flags: FlagListable},
	TexImage3D: {Name: "glTexImage3D", Params: []Param{pEnum("target"), pInt("level"), pInt("internalformat"), pInt("width"), pInt("height"), pInt("depth"), pInt("border"), pEnum("format"), pEnum("type"), pData("pixels")}},
	TexSubImage2D: {Name: "glTexSubImage2D", Params: []Param{pEnum("target"), pInt("level"), pInt("xoffset"), pInt("yoffset"), pInt("width"), pInt("height"), pEnum("format"), pEnum("type"), pData("pixels")}, Flags: FlagListable},
	TexStorage2D: {Name: "glTexStorage2D", Params: []Param{pEnum("target"), pInt("levels"), pEnum("internalformat"), pInt("width"), pInt("height")}},
	TexParameteri: {Name: "glTexParameteri", Params: []Param{pEnum("target"), pEnum("pname"), pInt("param")}, Flags: FlagListable},
	TexParameterf: {Name: "glTexParameterf", Params: []Param{pEnum("target"), pEnum("pname"), pFloat("param")}, Flags: FlagListable},
	TexParameteriv: {Name: "glTexParameteriv", Params: []Param{pEnum("target"), pEnum("pname"), pIn("params")}, Flags: FlagListable},
	TexParameterfv: {Name: "glTexParameterfv", Params: []Param{pEnum("target"), pEnum("pname"), pIn("params")}, Flags: FlagListable},
	GetTexParameteriv: {Name: "glGetTexParameteriv", Params: []Param{pEnum("target"), pEnum("pname"), pOut("params")}},
	GetTexLevelParameteriv: {Name: "glGetTexLevelParameteriv", Params: []Param{pEnum("target"), pInt("level"), pEnum("pname"), pOut("params")}},
	GetTexImage: {Name: "glGetTexImage", Params: []Param{pEnum("target"), pInt("level"), pEnum("format"), pEnum("type"), pOut("pixels")}},
	GenerateMipmap: {Name: "glGenerateMipmap", Params: []Param{pEnum("target")}},
	GenBuffers: {Name: "glGenBuffers", Params: []Param{pInt("n"), pHandlesOut("buffers", Buffers)}, Flags: FlagGen},
	CreateBuffers: {Name: "glCreateBuffers", Params: []Param{pInt("n"), pHandlesOut("buffers", Buffers)}, Flags: FlagGen},
	DeleteBuffers: {Name: "glDeleteBuffers", Params: []Param{pInt("n"), pHandles("buffers", Buffers)}, Flags: FlagDelete},
	BindBuffer: {Name: "glBindBuffer", Params: []Param{pEnum("target"), pHandle("buffer", Buffers)}, Flags: FlagBind},
	BindBufferBase: {Name: "glBindBufferBase", Params: []Param{pEnum("target"), pInt("index"), pHandle("buffer", Buffers)}, Flags: FlagBind},
	BindBufferRange: {Name: "glBindBufferRange", Params: []Param{pEnum("target"), pInt("index"), pHandle("buffer", Buffers), pInt("offset"), pInt("size")}, Flags: FlagBind},
	IsBuffer: {Name: "glIsBuffer", Params: []Param{pHandle("buffer", Buffers)}, Return: ParamInt, Flags: FlagCheckReturn},
	BufferData: {Name: "glBufferData", Params: []Param{pEnum("target"), pInt("size"), pIn("data"), pEnum("usage")}},
	BufferSubData: {Name: "glBufferSubData", Params: []Param{pEnum("target"), pInt("offset"), pInt("size"), pIn("data")}},
	GetBufferSubData: {Name: "glGetBufferSubData", Params: []Param{pEnum("target"), pInt("offset"), pInt("size"), pOut("data")}},
	MapBuffer: {Name: "glMapBuffer", Params: []Param{pEnum("target"), pEnum("access")}, Return: ParamPtr},
	MapBufferRange: {Name: "glMapBufferRange", Params: []Param{pEnum("target"), pInt("offset"), pInt("length"), pInt("access")}, Return: ParamPtr},
	UnmapBuffer: {Name: "glUnmapBuffer", Params: []Param{pEnum("target")}, Return: ParamInt},
	FlushMappedBufferRange: {Name: "glFlushMappedBufferRange", Params: []Param{pEnum("target"), pInt("offset"), pInt("length")}},
	GetBufferParameteriv: {Name: "glGetBufferParameteriv", Params: []Param{pEnum("target"), pEnum("pname"), pOut("params")}, Flags: FlagCheckOutputs},
	CopyBufferSubData: {Name: "glCopyBufferSubData", Params: []Param{pEnum("readTarget"), pEnum("writeTarget"), pInt("readOffset"), pInt("writeOffset"), pInt("size")}},
	GenVertexArrays: {Name: "glGenVertexArrays", Params: []Param{pInt("n"), pHandlesOut("arrays", VertexArrays)}, Flags: FlagGen},
	DeleteVertexArrays: {Name: "glDeleteVertexArrays", Params: []Param{pInt("n"), pHandles("arrays", VertexArrays)}, Flags: FlagDelete},
	BindVertexArray: {Name: "glBindVertexArray", Params: []Param{pHandle("array", VertexArrays)}, Flags: FlagBind},
	IsVertexArray: {Name: "glIsVertexArray", Params: []Param{pHandle("array", VertexArrays)}, Return: ParamInt, Flags: FlagCheckReturn},
	VertexAttribPointer: {Name: "glVertexAttribPointer", Params: []Param{pInt("index"), pInt("size"), pEnum("type"), pInt("normalized"), pInt("stride"), pClient("pointer")}},
	VertexAttribIPointer: {Name: "glVertexAttribIPointer", Params: []Param{pInt("index"), pInt("size"), pEnum("type"), pInt("stride"), pClient("pointer")}},
	EnableVertexAttribArray: {Name: "glEnableVertexAttribArray", Params: []Param{pInt("index")}},
	DisableVertexAttribArray: {Name: "glDisableVertexAttribArray", Params: []Param{pInt("index")}},
	VertexAttribDivisor: {Name: "glVertexAttribDivisor", Params: []Param{pInt("index"), pInt("divisor")}},
	GetVertexAttribiv: {Name: "glGetVertexAttribiv", Params: []Param{pInt("index"), pEnum("pname"), pOut("params")}, Flags: FlagCheckOutputs},
	VertexPointer: {Name: "glVertexPointer", Params: []Param{pInt("size"), pEnum("type"), pInt("stride"), pClient("pointer")}},
	NormalPointer: {Name: "glNormalPointer", Params: []Param{pEnum("type"), pInt("stride"), pClient("pointer")}},
	ColorPointer: {Name: "glColorPointer", Params: []Param{pInt("size"), pEnum("type"), pInt("stride"), pClient("pointer")}},
	TexCoordPointer: {Name: "glTexCoordPointer", Params: []Param{pInt("size"), pEnum("type"), pInt("stride"), pClient("pointer")}},
	EnableClientState: {Name: "glEnableClientState", Params: []Param{pEnum("array")}},
	DisableClientState: {Name: "glDisableClientState", Params: []Param{pEnum("array")}},
	DrawArrays: {Name: "glDrawArrays", Params: []Param{pEnum("mode"), pInt("first"), pInt("count")}, Flags: FlagDraw},
	DrawArraysInstanced: {Name: "glDrawArraysInstanced", Params: []Param{pEnum("mode"), pInt("first"), pInt("count"), pInt("instancecount")}, Flags: FlagDraw},
	DrawElements: {Name: "glDrawElements", Params: []Param{pEnum("mode"), pInt("count"), pEnum("type"), pData("indices")}, Flags: FlagDraw},
	DrawRangeElements: {Name: "glDrawRangeElements", Params: []Param{pEnum("mode"), pInt("start"), pInt("end"), pInt("count"), pEnum("type"), pData("indices")}, Flags: FlagDraw},
	DrawElementsInstanced: {Name: "glDrawElementsInstanced", Params: []Param{pEnum("mode"), pInt("count"), pEnum("type"), pData("indices"), pInt("instancecount")}, Flags: FlagDraw},
	DrawElementsBaseVertex: {Name: "glDrawElementsBaseVertex", Params: []Param{pEnum("mode"), pInt("count"), pEnum("type"), pData("indices"), pInt("basevertex")}, Flags: FlagDraw},
	GenFramebuffers: {Name: "glGenFramebuffers", Params: []Param{pInt("n"), pHandlesOut("framebuffers", Framebuffers)}, Flags: FlagGen},
	DeleteFramebuffers: {Name: "glDeleteFramebuffers", Params: []Param{pInt("n"), pHandles("framebuffers", Framebuffers)}, Flags: FlagDelete},
	BindFramebuffer: {Name: "glBindFramebuffer", Params: []Param{pEnum("target"), pHandle("framebuffer", Framebuffers)}, Flags: FlagBind},
	IsFramebuffer: {Name: "glIsFramebuffer", Params: []Param{pHandle("framebuffer", Framebuffers)}, Return: ParamInt, Flags: FlagCheckReturn},
	CheckFramebufferStatus: {Name: "glCheckFramebufferStatus", Params: []Param{pEnum("target")}, Return: ParamEnum, Flags: FlagCheckReturn},
	FramebufferTexture: {Name: "glFramebufferTexture", Params: []Param{pEnum("target"), pEnum("attachment"), pHandle("texture", Textures), pInt("level")}},
	FramebufferTexture2D: {Name: "glFramebufferTexture2D", Params: []Param{pEnum("target"), pEnum("attachment"), pEnum("textarget"), pHandle("texture", Textures), pInt("level")}},
	FramebufferTextureLayer: {Name: "glFramebufferTextureLayer", Params: []Param{pEnum("target"), pEnum("attachment"), pHandle("texture", Textures), pInt("level"), pInt("layer")}},
	FramebufferRenderbuffer: {Name: "glFramebufferRenderbuffer", Params: []Param{pEnum("target"), pEnum("attachment"), pEnum("renderbuffertarget"), pHandle("renderbuffer", Renderbuffers)}},
	GetFramebufferAttachmentParameteriv: {Name: "glGetFramebufferAttachmentParameteriv", Params: []Param{pEnum("target"), pEnum("attachment"), pEnum("pname"), pOut("params")}},
	BlitFramebuffer: {Name: "glBlitFramebuffer", Params: []Param{pInt("srcX0"), pInt("srcY0"), pInt("srcX1"), pInt("srcY1"), pInt("dstX0"), pInt("dstY0"), pInt("dstX1"), pInt("dstY1"), pInt("mask"), pEnum("filter")}},
	GenRenderbuffers: {Name: "glGenRenderbuffers", Params: []Param{pInt("n"), pHandlesOut("renderbuffers", Renderbuffers)}, Flags: FlagGen},
	DeleteRenderbuffers: {Name: "glDeleteRenderbuffers", Params: []Param{pInt("n"), pHandles("renderbuffers", Renderbuffers)}, Flags: FlagDelete},
	BindRenderbuffer: {Name: "glBindRenderbuffer", Params: []Param{pEnum("target"), pHandle("renderbuffer", Renderbuffers)}, Flags: FlagBind},
	IsRenderbuffer: {Name: "glIsRenderbuffer", Params: []Param{pHandle("renderbuffer", Renderbuffers)}, Return: ParamInt, Flags: FlagCheckReturn},
	RenderbufferStorage: {Name: "glRenderbufferStorage", Params: []Param{pEnum("target"), pEnum("internalformat"), pInt("width"), pInt("height")}},
	RenderbufferStorageMultisample: {Name: "glRenderbufferStorageMultisample", Params: []Param{pEnum("target"), pInt("samples"), pEnum("internalformat"), pInt("width"), pInt("height")}},
	GetRenderbufferParameteriv: {Name: "glGetRenderbufferParameteriv", Params: []Param{pEnum("target"), pEnum("pname"), pOut("params")}, Flags: FlagCheckOutputs},
	GenSamplers: {Name: "glGenSamplers", Params: []Param{pInt("count"), pHandlesOut("samplers", Samplers)}, Flags: FlagGen},
	DeleteSamplers: {Name: "glDeleteSamplers", Params: []Param{pInt("count"), pHandles("samplers", Samplers)}, Flags: FlagDelete},
	BindSampler: {Name: "glBindSampler", Params: []Param{pInt("unit"), pHandle("sampler", Samplers)}, Flags: FlagBind},
	IsSampler: {Name: "glIsSampler", Params: []Param{pHandle("sampler", Samplers)}, Return: ParamInt, Flags: FlagCheckReturn},
	SamplerParameteri: {Name: "glSamplerParameteri", Params: []Param{pHandle("sampler", Samplers), pEnum("pname"), pInt("param")}},
	SamplerParameterf: {Name: "glSamplerParameterf", Params: []Param{pHandle("sampler", Samplers), pEnum("pname"), pFloat("param")}},
	GetSamplerParameteriv: {Name: "glGetSamplerParameteriv", Params: []Param{pHandle("sampler", Samplers), pEnum("pname"), pOut("params")}, Flags: FlagCheckOutputs},
	GenQueries: {Name: "glGenQueries", Params: []Param{pInt("n"), pHandlesOut("ids", Queries)}, Flags: FlagGen},
	DeleteQueries: {Name: "glDeleteQueries", Params: []Param{pInt("n"), pHandles("ids", Queries)}, Flags: FlagDelete},
	BeginQuery: {Name: "glBeginQuery", Params: []Param{pEnum("target"), pHandle("id", Queries)}, Flags: FlagBind},
	EndQuery: {Name: "glEndQuery", Params: []Param{pEnum("target")}},
	IsQuery: {Name: "glIsQuery", Params: []Param{pHandle("id", Queries)}, Return: ParamInt, Flags: FlagCheckReturn},
	QueryCounter: {Name: "glQueryCounter", Params: []Param{pHandle("id", Queries), pEnum("target")}, Flags: FlagBind},
	GetQueryObjectiv: {Name: "glGetQueryObjectiv", Params: []Param{pHandle("id", Queries), pEnum("pname"), pOut("params")}},
	GetQueryObjectuiv: {Name: "glGetQueryObjectuiv", Params: []Param{pHandle("id", Queries), pEnum("pname"), pOut("params")}},
	CreateShader: {Name: "glCreateShader", Params: []Param{pEnum("type")}, Return: ParamHandle, ReturnNamespace: Shaders, Flags: FlagCreate},
	ShaderSource: {Name: "glShaderSource", Params: []Param{pHandle("shader", Shaders), pInt("count"), pIn("string"), pIn("length")}},
	CompileShader: {Name: "glCompileShader", Params: []Param{pHandle("shader", Shaders)}},
	DeleteShader: {Name: "glDeleteShader", Params: []Param{pHandle("shader", Shaders)}, Flags: FlagDelete},
	GetShaderiv: {Name: "glGetShaderiv", Params: []Param{pHandle("shader", Shaders), pEnum("pname"), pOut("params")}, Flags: FlagCheckOutputs},
	IsShader: {Name: "glIsShader", Params: []Param{pHandle("shader", Shaders)}, Return: ParamInt, Flags: FlagCheckReturn},
	CreateProgram: {Name: "glCreateProgram", Return: ParamHandle, ReturnNamespace: Programs, Flags: FlagCreate},
	CreateShaderProgramv: {Name: "glCreateShaderProgramv", Params: []Param{pEnum("type"), pInt("count"), pIn("strings")}, Return: ParamHandle, ReturnNamespace: Programs, Flags: FlagCreate},
	AttachShader: {Name: "glAttachShader", Params: []Param{pHandle("program", Programs), pHandle("shader", Shaders)}},
	DetachShader: {Name: "glDetachShader", Params: []Param{pHandle("program", Programs), pHandle("shader", Shaders)}},
	BindAttribLocation: {Name: "glBindAttribLocation", Params: []Param{pHandle("program", Programs), pInt("index"), pIn("name")}},
	LinkProgram: {Name: "glLinkProgram", Params: []Param{pHandle("program", Programs)}},
	ValidateProgram: {Name: "glValidateProgram", Params: []Param{pHandle("program", Programs)}},
	UseProgram: {Name: "glUseProgram", Params: []Param{pHandle("program", Programs)}, Flags: FlagBind},
	DeleteProgram: {Name: "glDeleteProgram", Params: []Param{pHandle("program", Programs)}, Flags: FlagDelete},
	GetProgramiv: {Name: "glGetProgramiv", Params: []Param{pHandle("program", Programs), pEnum("pname"), pOut("params")}, Flags: FlagCheckOutputs},
	IsProgram: {Name: "glIsProgram", Params: []Param{pHandle("program", Programs)}, Return: ParamInt, Flags: FlagCheckReturn},
	ProgramParameteri: {Name: "glProgramParameteri", Params: []Param{pHandle("program", Programs), pEnum("pname"), pInt("value")}},
	GetUniformLocation: {Name: "glGetUniformLocation", Params: []Param{pHandle("program", Programs), pIn("name")}, Return: ParamLocation, ReturnNamespace: Locations},
	GetAttribLocation: {Name: "glGetAttribLocation", Params: []Param{pHandle("program", Programs), pIn("name")}, Return: ParamInt, Flags: FlagCheckReturn},
	Uniform1i: {Name: "glUniform1i", Params: []Param{pLocation("location", -1), pInt("v0")}},
	Uniform1f: {Name: "glUniform1f", Params: []Param{pLocation("location", -1), pFloat("v0")}},
	Uniform2f: {Name: "glUniform2f", Params: []Param{pLocation("location", -1), pFloat("v0"), pFloat("v1")}},
	Uniform3f: {Name: "glUniform3f", Params: []Param{pLocation("location", -1), pFloat("v0"), pFloat("v1"), pFloat("v2")}},
	Uniform4f: {Name: "glUniform4f", Params: []Param{pLocation("location", -1), pFloat("v0"), pFloat("v1"), pFloat("v2"), pFloat("v3")}},
	Uniform1iv: {Name: "glUniform1iv", Params: []Param{pLocation("location", -1), pInt("count"), pIn("value")}},
	Uniform4fv: {Name: "glUniform4fv", Params: []Param{pLocation("location", -1), pInt("count"), pIn("value")}},
	UniformMatrix4fv: {Name: "glUniformMatrix4fv", Params: []Param{pLocation("location", -1), pInt("count"), pInt("transpose"), pIn("value")}},
	ProgramUniform1i: {Name: "glProgramUniform1i", Params: []Param{pHandle("program", Programs), pLocation("location", 0), pInt("v0")}},
	ProgramUniform4fv: {Name: "glProgramUniform4fv", Params: []Param{pHandle("program", Programs), pLocation("location", 0), pInt("count"), pIn("value")}},
	GetUniformiv: {Name: "glGetUniformiv", Params: []Param{pHandle("program", Programs), pLocation("location", 0), pOut("params")}},
	GenProgramPipelines: {Name: "glGenProgramPipelines", Params: []Param{pInt("n"), pHandlesOut("pipelines", Pipelines)}, Flags: FlagGen},
	DeleteProgramPipelines: {Name: "glDeleteProgramPipelines", Params: []Param{pInt("n"), pHandles("pipelines", Pipelines)}, Flags: FlagDelete},
	BindProgramPipeline: {Name: "glBindProgramPipeline", Params: []Param{pHandle("pipeline", Pipelines)}, Flags: FlagBind},
	IsProgramPipeline: {Name: "glIsProgramPipeline", Params: []Param{pHandle("pipeline", Pipelines)}, Return: ParamInt, Flags: FlagCheckReturn},
	UseProgramStages: {Name: "glUseProgramStages", Params: []Param{pHandle("pipeline", Pipelines), pInt("stages"), pHandle("program", Programs)}},
	ActiveShaderProgram: {Name: "glActiveShaderProgram", Params: []Param{pHandle("pipeline", Pipelines), pHandle("program", Programs)}},
	GenProgramsARB: {Name: "glGenProgramsARB", Params: []Param{pInt("n"), pHandlesOut("programs", ProgramsARB)}, Flags: FlagGen},
	DeleteProgramsARB: {Name: "glDeleteProgramsARB", Params: []Param{pInt("n"), pHandles("programs", ProgramsARB)}, Flags: FlagDelete},
	BindProgramARB: {Name: "glBindProgramARB", Params: []Param{pEnum("target"), pHandle("program", ProgramsARB)}, Flags: FlagBind},
	IsProgramARB: {Name: "glIsProgramARB", Params: []Param{pHandle("program", ProgramsARB)}, Return: ParamInt, Flags: FlagCheckReturn},
	ProgramStringARB: {Name: "glProgramStringARB", Params: []Param{pEnum("target"), pEnum("format"), pInt("len"), pIn("string")}},
	ProgramEnvParameter4fARB: {Name: "glProgramEnvParameter4fARB", Params: []Param{pEnum("target"), pInt("index"), pFloat("x"), pFloat("y"), pFloat("z"), pFloat("w")}, Flags: FlagListable},
	ProgramLocalParameter4fARB: {Name: "glProgramLocalParameter4fARB", Params: []Param{pEnum("target"), pInt("index"), pFloat("x"), pFloat("y"), pFloat("z"), pFloat("w")}, Flags: FlagListable},
	FenceSync: {Name: "glFenceSync", Params: []Param{pEnum("condition"), pInt("flags")}, Return: ParamHandle, ReturnNamespace: Syncs, Flags: FlagCreate},
	DeleteSync: {Name: "glDeleteSync", Params: []Param{pHandle("sync", Syncs)}, Flags: FlagDelete},
	IsSync: {Name: "glIsSync", Params: []Param{pHandle("sync", Syncs)}, Return: ParamInt, Flags: FlagCheckReturn},
	ClientWaitSync: {Name: "glClientWaitSync", Params: []Param{pHandle("sync", Syncs), pInt("flags"), pInt("timeout")}, Return: ParamEnum},
	WaitSync: {Name: "glWaitSync", Params: []Param{pHandle("sync", Syncs), pInt("flags"), pInt("timeout")}},
	GetSynciv: {Name: "glGetSynciv", Params: []Param{pHandle("sync", Syncs), pEnum("pname"), pInt("bufSize"), pOut("length"), pOut("values")}},
	GetShaderSource: {Name: "glGetShaderSource", Params: []Param{pHandle("shader", Shaders), pInt("bufSize"), pOut("length"), pOut("source")}},
	GetAttachedShaders: {Name: "glGetAttachedShaders", Params: []Param{pHandle("program", Programs), pInt("maxCount"), pOut("count"), pOut("shaders")}},
	GetActiveUniform: {Name: "glGetActiveUniform", Params: []Param{pHandle("program", Programs), pInt("index"), pInt("bufSize"), pOut("length"), pOut("size"), pOut("type"), pOut("name")}},
	GetUniformfv: {Name: "glGetUniformfv", Params: []Param{pHandle("program", Programs), pLocation("location", 0), pOut("params")}},
	ProgramUniform1iv: {Name: "glProgramUniform1iv", Params: []Param{pHandle("program", Programs), pLocation("location", 0), pInt("count"), pIn("value")}},
	ProgramUniform1fv: {Name: "glProgramUniform1fv", Params: []Param{pHandle("program", Programs), pLocation("location", 0), pInt("count"), pIn("value")}},
	ProgramUniform2fv: {Name: "glProgramUniform2fv", Params: []Param{pHandle("program", Programs), pLocation("location", 0), pInt("count"), pIn("value")}},
	ProgramUniform3fv: {Name: "glProgramUniform3fv", Params: []Param{pHandle("program", Programs), pLocation("location", 0), pInt("count"), pIn("value")}},
	ProgramUniformMatrix4fv: {Name: "glProgramUniformMatrix4fv", Params: []Param{pHandle("program", Programs), pLocation("location", 0), pInt("count"), pInt("transpose"), pIn("value")}},
	GetProgramivARB: {Name: "glGetProgramivARB", Params: []Param{pEnum("target"), pEnum("pname"), pOut("params")}},
	GetProgramStringARB: {Name: "glGetProgramStringARB", Params: []Param{pEnum("target"), pEnum("pname"), pOut("string")}},
	GetProgramLocalParameterfvARB: {Name: "glGetProgramLocalParameterfvARB", Params: []Param{pEnum("target"), pInt("index"), pOut("params")}},
	GetProgramEnvParameterfvARB: {Name: "glGetProgramEnvParameterfvARB", Params: []Param{pEnum("target"), pInt("index"), pOut("params")}},
	GetProgramPipelineiv: {Name: "glGetProgramPipelineiv", Params: []Param{pHandle("pipeline", Pipelines), pEnum("pname"), pOut("params")}},
	GetVertexAttribPointerv: {Name: "glGetVertexAttribPointerv", Params: []Param{pInt("index"), pEnum("pname"), pOut("pointer")}},
	GetVertexAttribfv: {Name: "glGetVertexAttribfv", Params: []Param{pInt("index"), pEnum("pname"), pOut("params")}},
	GetPointerv: {Name: "glGetPointerv", Params: []Param{pEnum("pname"), pOut("params")}},
	GetLightfv: {Name: "glGetLightfv", Params: []Param{pEnum("light"), pEnum("pname"), pOut("params")}},
	GetMaterialfv: {Name: "glGetMaterialfv", Params: []Param{pEnum("face"), pEnum("pname"), pOut("params")}},
	GetTexEnvfv: {Name: "glGetTexEnvfv", Params: []Param{pEnum("target"), pEnum("pname"), pOut("params")}},
	RasterPos2i: {Name: "glRasterPos2i", Params: []Param{pInt("x"), pInt("y")}, Flags: FlagListable},
	BlendEquation: {Name: "glBlendEquation", Params: []Param{pEnum("mode")}, Flags: FlagListable},
	StencilFunc: {Name: "glStencilFunc", Params: []Param{pEnum("func"), pInt("ref"), pInt("mask")}, Flags: FlagListable},
	LightModelf: {Name: "glLightModelf", Params: []Param{pEnum("pname"), pFloat("param")}, Flags: FlagListable},
	StencilOp: {Name: "glStencilOp", Params: []Param{pEnum("fail"), pEnum("zfail"), pEnum("zpass")}, Flags: FlagListable},
	StencilMask: {Name: "glStencilMask", Params: []Param{pInt("mask")}, Flags: FlagListable},
	StencilFuncSeparate: {Name: "glStencilFuncSeparate", Params: []Param{pEnum("face"), pEnum("func"), pInt("ref"), pInt("mask")}},
	StencilOpSeparate: {Name: "glStencilOpSeparate", Params: []Param{pEnum("face"), pEnum("sfail"), pEnum("dpfail"), pEnum("dppass")}},
	StencilMaskSeparate: {Name: "glStencilMaskSeparate", Params: []Param{pEnum("face"), pInt("mask")}},
	BlendFuncSeparate: {Name: "glBlendFuncSeparate", Params: []Param{pEnum("sfactorRGB"), pEnum("dfactorRGB"), pEnum("sfactorAlpha"), pEnum("dfactorAlpha")}},
	BlendEquationSeparate: {Name: "glBlendEquationSeparate", Params: []Param{pEnum("modeRGB"), pEnum("modeAlpha")}},
	BlendColor: {Name: "glBlendColor", Params: []Param{pFloat("red"), pFloat("green"), pFloat("blue"), pFloat("alpha")}, Flags: FlagListable},
	PolygonOffset: {Name: "glPolygonOffset", Params: []Param{pFloat("factor"), pFloat("units")}, Flags: FlagListable},
	DepthRange: {Name: "glDepthRange", Params: []Param{pFloat("near"), pFloat("far")}, Flags: FlagListable},
	DepthRangef: {Name: "glDepthRangef", Params: []Param{pFloat("n"), pFloat("f")}},
	ClearDepthf: {Name: "glClearDepthf", Params: []Param{pFloat("d")}},
	SampleCoverage: {Name: "glSampleCoverage", Params: []Param{pFloat("value"), pInt("invert")}},
	LogicOp: {Name: "glLogicOp", Params: []Param{pEnum("opcode")}, Flags: FlagListable},
	PrimitiveRestartIndex: {Name: "glPrimitiveRestartIndex", Params: []Param{pInt("index")}},
	PointParameterf: {Name: "glPointParameterf", Params: []Param{pEnum("pname"), pFloat("param")}, Flags: FlagListable},
	Uniform2i: {Name: "glUniform2i", Params: []Param{pLocation("location", -1), pInt("v0"), pInt("v1")}},
	Uniform3i: {Name: "glUniform3i", Params: []Param{pLocation("location", -1), pInt("v0"), pInt("v1"), pInt("v2")}},
	Uniform4i: {Name: "glUniform4i", Params: []Param{pLocation("location", -1), pInt("v0"), pInt("v1"), pInt("v2"), pInt("v3")}},
	Uniform2iv: {Name: "glUniform2iv", Params: []Param{pLocation("location", -1), pInt("count"), pIn("value")}},
	Uniform3iv: {Name: "glUniform3iv", Params: []Param{pLocation("location", -1), pInt("count"), pIn("value")}},
	Uniform4iv: {Name: "glUniform4iv", Params: []Param{pLocation("location", -1), pInt("count"), pIn("value")}},
	Uniform1fv: {Name: "glUniform1fv", Params: []Param{pLocation("location", -1), pInt("count"), pIn("value")}},
	Uniform2fv: {Name: "glUniform2fv", Params: []Param{pLocation("location", -1), pInt("count"), pIn("value")}},
	Uniform3fv: {Name: "glUniform3fv", Params: []Param{pLocation("location", -1), pInt("count"), pIn("value")}},
	UniformMatrix2fv: {Name: "glUniformMatrix2fv", Params: []Param{pLocation("location", -1), pInt("count"), pInt("transpose"), pIn("value")}},
	UniformMatrix3fv: {Name: "glUniformMatrix3fv", Params: []Param{pLocation("location", -1), pInt("count"), pInt("transpose"), pIn("value")}},
	ProgramUniformMatrix3fv: {Name: "glProgramUniformMatrix3fv", Params: []Param{pHandle("program", Programs), pLocation("location", 0), pInt("count"), pInt("transpose"), pIn("value")}},
	GetUniformBlockIndex: {Name: "glGetUniformBlockIndex", Params: []Param{pHandle("program", Programs), pIn("uniformBlockName")}, Return: ParamInt, Flags: FlagCheckReturn},
	UniformBlockBinding: {Name: "glUniformBlockBinding", Params: []Param{pHandle("program", Programs), pInt("uniformBlockIndex"), pInt("uniformBlockBinding")}},
	GetShaderInfoLog: {Name: "glGetShaderInfoLog", Params: []Param{pHandle("shader", Shaders), pInt("bufSize"), pOut("length"), pOut("infoLog")}},
	GetProgramInfoLog: {Name: "glGetProgramInfoLog", Params: []Param{pHandle("program", Programs), pInt("bufSize"), pOut("length"), pOut("infoLog")}},
	BindFragDataLocation: {Name: "glBindFragDataLocation", Params: []Param{pHandle("program", Programs), pInt("color"), pIn("name")}},
	TexSubImage3D: {Name: "glTexSubImage3D", Params: []Param{pEnum("target"), pInt("level"), pInt("xoffset"), pInt("yoffset"), pInt("zoffset"), pInt("width"), pInt("height"), pInt("depth"), pEnum("format"), pEnum("type"), pData("pixels")}},
	TexStorage3D: {Name: "glTexStorage3D", Params: []Param{pEnum("target"), pInt("levels"), pEnum("internalformat"), pInt("width"), pInt("height"), pInt("depth")}},
	CompressedTexImage2D: {Name: "glCompressedTexImage2D", Params: []Param{pEnum("target"), pInt("level"), pEnum("internalformat"), pInt("width"), pInt("height"), pInt("border"), pInt("imageSize"), pData("data")}, Flags: FlagListable},
	CompressedTexSubImage2D: {Name: "glCompressedTexSubImage2D", Params: []Param{pEnum("target"), pInt("level"), pInt("xoffset"), pInt("yoffset"), pInt("width"), pInt("height"), pEnum("format"), pInt("imageSize"), pData("data")}, Flags: FlagListable},
	CopyTexImage2D: {Name: "glCopyTexImage2D", Params: []Param{pEnum("target"), pInt("level"), pEnum("internalformat"), pInt("x"), pInt("y"), pInt("width"), pInt("height"), pInt("border")}, Flags: FlagListable},
	CopyTexSubImage2D: {Name: "glCopyTexSubImage2D", Params: []Param{pEnum("target"), pInt("level"), pInt("xoffset"), pInt("yoffset"), pInt("x"), pInt("y"), pInt("width"), pInt("height")}, Flags: FlagListable},
	ClearBufferfv: {Name: "glClearBufferfv", Params: []Param{pEnum("buffer"), pInt("drawbuffer"), pIn("value")}, Flags: FlagClear},
	Vertex3fv: {Name: "glVertex3fv", Params: []Param{pIn("v")}, Flags: FlagListable},
	Color4fv: {Name: "glColor4fv", Params: []Param{pIn("v")}, Flags: FlagListable},
	Normal3fv: {Name: "glNormal3fv", Params: []Param{pIn("v")}, Flags: FlagListable},
	VertexAttrib4fv: {Name: "glVertexAttrib4fv", Params: []Param{pInt("index"), pIn("v")}, Flags: FlagListable},
}
