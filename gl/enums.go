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

package gl

// Enum is an OpenGL enumerant.
type Enum uint32

// Enumerants used by the replayer and its tests.
const (
	NONE                                         Enum = 0x0
	NO_ERROR                                     Enum = 0x0
	ZERO                                         Enum = 0x0
	ONE                                          Enum = 0x1
	POINTS                                       Enum = 0x0
	LINES                                        Enum = 0x1
	LINE_STRIP                                   Enum = 0x3
	TRIANGLES                                    Enum = 0x4
	TRIANGLE_STRIP                               Enum = 0x5
	TRIANGLE_FAN                                 Enum = 0x6
	QUADS                                        Enum = 0x7
	INVALID_ENUM                                 Enum = 0x500
	INVALID_VALUE                                Enum = 0x501
	INVALID_OPERATION                            Enum = 0x502
	STACK_OVERFLOW                               Enum = 0x503
	STACK_UNDERFLOW                              Enum = 0x504
	OUT_OF_MEMORY                                Enum = 0x505
	INVALID_FRAMEBUFFER_OPERATION                Enum = 0x506
	FRONT                                        Enum = 0x404
	BACK                                         Enum = 0x405
	FRONT_AND_BACK                               Enum = 0x408
	CW                                           Enum = 0x900
	CCW                                          Enum = 0x901
	NEVER                                        Enum = 0x200
	LESS                                         Enum = 0x201
	EQUAL                                        Enum = 0x202
	LEQUAL                                       Enum = 0x203
	ALWAYS                                       Enum = 0x207
	SRC_ALPHA                                    Enum = 0x302
	ONE_MINUS_SRC_ALPHA                          Enum = 0x303
	CURRENT_COLOR                                Enum = 0xb00
	CURRENT_NORMAL                               Enum = 0xb02
	CURRENT_TEXTURE_COORDS                       Enum = 0xb03
	POINT_SIZE                                   Enum = 0xb11
	LINE_WIDTH                                   Enum = 0xb21
	POLYGON_MODE                                 Enum = 0xb40
	POLYGON_STIPPLE                              Enum = 0xb42
	LIST_MODE                                    Enum = 0xb30
	LIST_BASE                                    Enum = 0xb32
	LIST_INDEX                                   Enum = 0xb33
	CULL_FACE                                    Enum = 0xb44
	CULL_FACE_MODE                               Enum = 0xb45
	FRONT_FACE                                   Enum = 0xb46
	LIGHTING                                     Enum = 0xb50
	COLOR_MATERIAL                               Enum = 0xb57
	FOG                                          Enum = 0xb60
	DEPTH_TEST                                   Enum = 0xb71
	DEPTH_CLEAR_VALUE                            Enum = 0xb73
	DEPTH_FUNC                                   Enum = 0xb74
	STENCIL_TEST                                 Enum = 0xb90
	STENCIL_CLEAR_VALUE                          Enum = 0xb91
	NORMALIZE                                    Enum = 0xba1
	VIEWPORT                                     Enum = 0xba2
	MATRIX_MODE                                  Enum = 0xba0
	MODELVIEW_MATRIX                             Enum = 0xba6
	PROJECTION_MATRIX                            Enum = 0xba7
	TEXTURE_MATRIX                               Enum = 0xba8
	DITHER                                       Enum = 0xbd0
	BLEND_DST                                    Enum = 0xbe0
	BLEND_SRC                                    Enum = 0xbe1
	BLEND                                        Enum = 0xbe2
	DRAW_BUFFER                                  Enum = 0xc01
	READ_BUFFER                                  Enum = 0xc02
	SCISSOR_BOX                                  Enum = 0xc10
	SCISSOR_TEST                                 Enum = 0xc11
	COLOR_CLEAR_VALUE                            Enum = 0xc22
	RENDER_MODE                                  Enum = 0xc40
	SHADE_MODEL                                  Enum = 0xb54
	UNPACK_ALIGNMENT                             Enum = 0xcf5
	PACK_ALIGNMENT                               Enum = 0xd05
	MAX_LIGHTS                                   Enum = 0xd31
	TEXTURE_1D                                   Enum = 0xde0
	TEXTURE_2D                                   Enum = 0xde1
	TEXTURE_WIDTH                                Enum = 0x1000
	TEXTURE_HEIGHT                               Enum = 0x1001
	TEXTURE_INTERNAL_FORMAT                      Enum = 0x1003
	BYTE                                         Enum = 0x1400
	UNSIGNED_BYTE                                Enum = 0x1401
	SHORT                                        Enum = 0x1402
	UNSIGNED_SHORT                               Enum = 0x1403
	INT                                          Enum = 0x1404
	UNSIGNED_INT                                 Enum = 0x1405
	FLOAT                                        Enum = 0x1406
	DOUBLE                                       Enum = 0x140a
	COMPILE                                      Enum = 0x1300
	COMPILE_AND_EXECUTE                          Enum = 0x1301
	AMBIENT                                      Enum = 0x1200
	DIFFUSE                                      Enum = 0x1201
	SPECULAR                                     Enum = 0x1202
	POSITION                                     Enum = 0x1203
	EMISSION                                     Enum = 0x1600
	SHININESS                                    Enum = 0x1601
	AMBIENT_AND_DIFFUSE                          Enum = 0x1602
	MODELVIEW                                    Enum = 0x1700
	PROJECTION                                   Enum = 0x1701
	TEXTURE                                      Enum = 0x1702
	COLOR                                        Enum = 0x1800
	DEPTH                                        Enum = 0x1801
	STENCIL                                      Enum = 0x1802
	RED                                          Enum = 0x1903
	DEPTH_COMPONENT                              Enum = 0x1902
	RGB                                          Enum = 0x1907
	RGBA                                         Enum = 0x1908
	FLAT                                         Enum = 0x1d00
	SMOOTH                                       Enum = 0x1d01
	RENDER                                       Enum = 0x1c00
	FEEDBACK                                     Enum = 0x1c01
	SELECT                                       Enum = 0x1c02
	REPLACE                                      Enum = 0x1e01
	MODULATE                                     Enum = 0x2100
	DECAL                                        Enum = 0x2101
	TEXTURE_ENV_MODE                             Enum = 0x2200
	TEXTURE_ENV_COLOR                            Enum = 0x2201
	TEXTURE_ENV                                  Enum = 0x2300
	NEAREST                                      Enum = 0x2600
	LINEAR                                       Enum = 0x2601
	NEAREST_MIPMAP_NEAREST                       Enum = 0x2700
	LINEAR_MIPMAP_LINEAR                         Enum = 0x2703
	TEXTURE_MAG_FILTER                           Enum = 0x2800
	TEXTURE_MIN_FILTER                           Enum = 0x2801
	TEXTURE_WRAP_S                               Enum = 0x2802
	TEXTURE_WRAP_T                               Enum = 0x2803
	REPEAT                                       Enum = 0x2901
	LIGHT0                                       Enum = 0x4000
	POLYGON_OFFSET_FILL                          Enum = 0x8037
	RGB8                                         Enum = 0x8051
	RGBA8                                        Enum = 0x8058
	TEXTURE_BINDING_1D                           Enum = 0x8068
	TEXTURE_BINDING_2D                           Enum = 0x8069
	TEXTURE_BINDING_3D                           Enum = 0x806a
	TEXTURE_3D                                   Enum = 0x806f
	TEXTURE_DEPTH                                Enum = 0x8071
	TEXTURE_WRAP_R                               Enum = 0x8072
	VERTEX_ARRAY                                 Enum = 0x8074
	NORMAL_ARRAY                                 Enum = 0x8075
	COLOR_ARRAY                                  Enum = 0x8076
	TEXTURE_COORD_ARRAY                          Enum = 0x8078
	SAMPLES                                      Enum = 0x80a9
	CLAMP_TO_EDGE                                Enum = 0x812f
	TEXTURE_BASE_LEVEL                           Enum = 0x813c
	TEXTURE_MAX_LEVEL                            Enum = 0x813d
	DEPTH_COMPONENT24                            Enum = 0x81a6
	FRAMEBUFFER_UNDEFINED                        Enum = 0x8219
	DEPTH_STENCIL_ATTACHMENT                     Enum = 0x821a
	PROGRAM_SEPARABLE                            Enum = 0x8258
	ACTIVE_PROGRAM                               Enum = 0x8259
	PROGRAM_PIPELINE_BINDING                     Enum = 0x825a
	BUFFER                                       Enum = 0x82e0
	SHADER                                       Enum = 0x82e1
	PROGRAM                                      Enum = 0x82e2
	QUERY                                        Enum = 0x82e3
	PROGRAM_PIPELINE                             Enum = 0x82e4
	SAMPLER                                      Enum = 0x82e6
	DISPLAY_LIST                                 Enum = 0x82e7
	TEXTURE0                                     Enum = 0x84c0
	ACTIVE_TEXTURE                               Enum = 0x84e0
	CLIENT_ACTIVE_TEXTURE                        Enum = 0x84e1
	MAX_TEXTURE_UNITS                            Enum = 0x84e2
	TEXTURE_RECTANGLE                            Enum = 0x84f5
	DEPTH_STENCIL                                Enum = 0x84f9
	TEXTURE_CUBE_MAP                             Enum = 0x8513
	TEXTURE_BINDING_CUBE_MAP                     Enum = 0x8514
	TEXTURE_CUBE_MAP_POSITIVE_X                  Enum = 0x8515
	VERTEX_ARRAY_BINDING                         Enum = 0x85b5
	VERTEX_PROGRAM_ARB                           Enum = 0x8620
	VERTEX_ATTRIB_ARRAY_ENABLED                  Enum = 0x8622
	VERTEX_ATTRIB_ARRAY_SIZE                     Enum = 0x8623
	VERTEX_ATTRIB_ARRAY_STRIDE                   Enum = 0x8624
	VERTEX_ATTRIB_ARRAY_TYPE                     Enum = 0x8625
	CURRENT_VERTEX_ATTRIB                        Enum = 0x8626
	PROGRAM_LENGTH_ARB                           Enum = 0x8627
	PROGRAM_STRING_ARB                           Enum = 0x8628
	VERTEX_ATTRIB_ARRAY_POINTER                  Enum = 0x8645
	PROGRAM_BINDING_ARB                          Enum = 0x8677
	BUFFER_SIZE                                  Enum = 0x8764
	BUFFER_USAGE                                 Enum = 0x8765
	FRAGMENT_PROGRAM_ARB                         Enum = 0x8804
	QUERY_RESULT                                 Enum = 0x8866
	QUERY_RESULT_AVAILABLE                       Enum = 0x8867
	MAX_VERTEX_ATTRIBS                           Enum = 0x8869
	VERTEX_ATTRIB_ARRAY_NORMALIZED               Enum = 0x886a
	PROGRAM_FORMAT_ASCII_ARB                     Enum = 0x8875
	PROGRAM_FORMAT_ARB                           Enum = 0x8876
	ARRAY_BUFFER                                 Enum = 0x8892
	ELEMENT_ARRAY_BUFFER                         Enum = 0x8893
	ARRAY_BUFFER_BINDING                         Enum = 0x8894
	ELEMENT_ARRAY_BUFFER_BINDING                 Enum = 0x8895
	VERTEX_ATTRIB_ARRAY_BUFFER_BINDING           Enum = 0x889f
	READ_ONLY                                    Enum = 0x88b8
	WRITE_ONLY                                   Enum = 0x88b9
	READ_WRITE                                   Enum = 0x88ba
	BUFFER_ACCESS                                Enum = 0x88bb
	BUFFER_MAPPED                                Enum = 0x88bc
	TIME_ELAPSED                                 Enum = 0x88bf
	STREAM_DRAW                                  Enum = 0x88e0
	STATIC_DRAW                                  Enum = 0x88e4
	DYNAMIC_DRAW                                 Enum = 0x88e8
	PIXEL_PACK_BUFFER                            Enum = 0x88eb
	PIXEL_UNPACK_BUFFER                          Enum = 0x88ec
	PIXEL_PACK_BUFFER_BINDING                    Enum = 0x88ed
	PIXEL_UNPACK_BUFFER_BINDING                  Enum = 0x88ef
	DEPTH24_STENCIL8                             Enum = 0x88f0
	SAMPLES_PASSED                               Enum = 0x8914
	SAMPLER_BINDING                              Enum = 0x8919
	UNIFORM_BUFFER                               Enum = 0x8a11
	UNIFORM_BUFFER_BINDING                       Enum = 0x8a28
	FRAGMENT_SHADER                              Enum = 0x8b30
	VERTEX_SHADER                                Enum = 0x8b31
	MAX_COMBINED_TEXTURE_IMAGE_UNITS             Enum = 0x8b4d
	SHADER_TYPE                                  Enum = 0x8b4f
	DELETE_STATUS                                Enum = 0x8b80
	COMPILE_STATUS                               Enum = 0x8b81
	LINK_STATUS                                  Enum = 0x8b82
	VALIDATE_STATUS                              Enum = 0x8b83
	ATTACHED_SHADERS                             Enum = 0x8b85
	ACTIVE_UNIFORMS                              Enum = 0x8b86
	SHADER_SOURCE_LENGTH                         Enum = 0x8b88
	CURRENT_PROGRAM                              Enum = 0x8b8d
	TEXTURE_2D_ARRAY                             Enum = 0x8c1a
	PRIMITIVES_GENERATED                         Enum = 0x8c87
	TRANSFORM_FEEDBACK_BUFFER                    Enum = 0x8c8e
	ANY_SAMPLES_PASSED                           Enum = 0x8c2f
	FRAMEBUFFER_BINDING                          Enum = 0x8ca6
	RENDERBUFFER_BINDING                         Enum = 0x8ca7
	READ_FRAMEBUFFER                             Enum = 0x8ca8
	DRAW_FRAMEBUFFER                             Enum = 0x8ca9
	READ_FRAMEBUFFER_BINDING                     Enum = 0x8caa
	RENDERBUFFER_SAMPLES                         Enum = 0x8cab
	FRAMEBUFFER_ATTACHMENT_OBJECT_TYPE           Enum = 0x8cd0
	FRAMEBUFFER_ATTACHMENT_OBJECT_NAME           Enum = 0x8cd1
	FRAMEBUFFER_ATTACHMENT_TEXTURE_LEVEL         Enum = 0x8cd2
	FRAMEBUFFER_COMPLETE                         Enum = 0x8cd5
	FRAMEBUFFER_INCOMPLETE_ATTACHMENT            Enum = 0x8cd6
	FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT    Enum = 0x8cd7
	COLOR_ATTACHMENT0                            Enum = 0x8ce0
	COLOR_ATTACHMENT1                            Enum = 0x8ce1
	DEPTH_ATTACHMENT                             Enum = 0x8d00
	STENCIL_ATTACHMENT                           Enum = 0x8d20
	FRAMEBUFFER                                  Enum = 0x8d40
	RENDERBUFFER                                 Enum = 0x8d41
	RENDERBUFFER_WIDTH                           Enum = 0x8d42
	RENDERBUFFER_HEIGHT                          Enum = 0x8d43
	RENDERBUFFER_INTERNAL_FORMAT                 Enum = 0x8d44
	GEOMETRY_SHADER                              Enum = 0x8dd9
	COPY_READ_BUFFER                             Enum = 0x8f36
	COPY_WRITE_BUFFER                            Enum = 0x8f37
	TEXTURE_2D_MULTISAMPLE                       Enum = 0x9100
	TEXTURE_SAMPLES                              Enum = 0x9106
	OBJECT_TYPE                                  Enum = 0x9112
	SYNC_CONDITION                               Enum = 0x9113
	SYNC_STATUS                                  Enum = 0x9114
	SYNC_FLAGS                                   Enum = 0x9115
	SYNC_FENCE                                   Enum = 0x9116
	SYNC_GPU_COMMANDS_COMPLETE                   Enum = 0x9117
	UNSIGNALED                                   Enum = 0x9118
	SIGNALED                                     Enum = 0x9119
	ALREADY_SIGNALED                             Enum = 0x911a
	TIMEOUT_EXPIRED                              Enum = 0x911b
	CONDITION_SATISFIED                          Enum = 0x911c
	WAIT_FAILED                                  Enum = 0x911d
	BUFFER_ACCESS_FLAGS                          Enum = 0x911f
	BUFFER_MAP_LENGTH                            Enum = 0x9120
	BUFFER_MAP_OFFSET                            Enum = 0x9121
	COMPUTE_SHADER                               Enum = 0x91b9
	DEPTH_WRITEMASK                              Enum = 0xb72
	COLOR_WRITEMASK                              Enum = 0xc23
	TIMESTAMP                                    Enum = 0x8e28
	FLOAT_VEC2                                   Enum = 0x8b50
	FLOAT_VEC3                                   Enum = 0x8b51
	FLOAT_VEC4                                   Enum = 0x8b52
	INT_VEC2                                     Enum = 0x8b53
	INT_VEC3                                     Enum = 0x8b54
	INT_VEC4                                     Enum = 0x8b55
	BOOL                                         Enum = 0x8b56
	FLOAT_MAT4                                   Enum = 0x8b5c
	SAMPLER_2D                                   Enum = 0x8b5e
	ACTIVE_UNIFORM_MAX_LENGTH                    Enum = 0x8b87
	INFO_LOG_LENGTH                              Enum = 0x8b84
	MAX_PROGRAM_LOCAL_PARAMETERS_ARB             Enum = 0x88b4
	MAX_PROGRAM_ENV_PARAMETERS_ARB               Enum = 0x88b5
	VERTEX_ARRAY_SIZE                            Enum = 0x807a
	VERTEX_ARRAY_TYPE                            Enum = 0x807b
	VERTEX_ARRAY_STRIDE                          Enum = 0x807c
	NORMAL_ARRAY_TYPE                            Enum = 0x807e
	NORMAL_ARRAY_STRIDE                          Enum = 0x807f
	COLOR_ARRAY_SIZE                             Enum = 0x8081
	COLOR_ARRAY_TYPE                             Enum = 0x8082
	COLOR_ARRAY_STRIDE                           Enum = 0x8083
	TEXTURE_COORD_ARRAY_SIZE                     Enum = 0x8088
	TEXTURE_COORD_ARRAY_TYPE                     Enum = 0x8089
	TEXTURE_COORD_ARRAY_STRIDE                   Enum = 0x808a
	VERTEX_ARRAY_POINTER                         Enum = 0x808e
	NORMAL_ARRAY_POINTER                         Enum = 0x808f
	COLOR_ARRAY_POINTER                          Enum = 0x8090
	TEXTURE_COORD_ARRAY_POINTER                  Enum = 0x8092
	VERTEX_ARRAY_BUFFER_BINDING                  Enum = 0x8896
	NORMAL_ARRAY_BUFFER_BINDING                  Enum = 0x8897
	COLOR_ARRAY_BUFFER_BINDING                   Enum = 0x8898
	TEXTURE_COORD_ARRAY_BUFFER_BINDING           Enum = 0x889a
	VERTEX_ATTRIB_ARRAY_INTEGER                  Enum = 0x88fd
	VERTEX_ATTRIB_ARRAY_DIVISOR                  Enum = 0x88fe
	FEEDBACK_BUFFER_SIZE                         Enum = 0xdf1
	SELECTION_BUFFER_SIZE                        Enum = 0xdf4
	NAME_STACK_DEPTH                             Enum = 0xd70
	MODELVIEW_STACK_DEPTH                        Enum = 0xba3
	CURRENT_RASTER_POSITION                      Enum = 0xb07
	BLEND_EQUATION                               Enum = 0x8009
	STENCIL_FUNC                                 Enum = 0xb92
	UNPACK_ROW_LENGTH                            Enum = 0xcf2
	PACK_ROW_LENGTH                              Enum = 0xd02
	LIGHT_MODEL_AMBIENT                          Enum = 0xb53
	FRAMEBUFFER_DEFAULT                          Enum = 0x8218
	LINE_LOOP                                    Enum = 0x2
	POLYGON                                      Enum = 0x9
	FEEDBACK_2D                                  Enum = 0x600
	FEEDBACK_3D                                  Enum = 0x601
	FEEDBACK_3D_COLOR                            Enum = 0x602
	PASS_THROUGH_TOKEN                           Enum = 0x700
	POINT_TOKEN                                  Enum = 0x701
	LINE_TOKEN                                   Enum = 0x702
	POLYGON_TOKEN                                Enum = 0x703
	MAX_NAME_STACK_DEPTH                         Enum = 0xd37
	MAX_LIST_NESTING                             Enum = 0xb31
	VENDOR                                       Enum = 0x1f00
	RENDERER                                     Enum = 0x1f01
	VERSION                                      Enum = 0x1f02
	EXTENSIONS                                   Enum = 0x1f03
	ACTIVE_ATTRIBUTES                            Enum = 0x8b89
	TEXTURE_IMMUTABLE_FORMAT                     Enum = 0x912f
	TEXTURE_IMMUTABLE_LEVELS                     Enum = 0x82df
	FRAMEBUFFER_ATTACHMENT_TEXTURE_CUBE_MAP_FACE Enum = 0x8cd3
	FRAMEBUFFER_ATTACHMENT_TEXTURE_LAYER         Enum = 0x8cd4
	STENCIL_VALUE_MASK                           Enum = 0xb93
	STENCIL_FAIL                                 Enum = 0xb94
	STENCIL_PASS_DEPTH_FAIL                      Enum = 0xb95
	STENCIL_PASS_DEPTH_PASS                      Enum = 0xb96
	STENCIL_REF                                  Enum = 0xb97
	STENCIL_WRITEMASK                            Enum = 0xb98
	STENCIL_BACK_FUNC                            Enum = 0x8800
	STENCIL_BACK_FAIL                            Enum = 0x8801
	STENCIL_BACK_PASS_DEPTH_FAIL                 Enum = 0x8802
	STENCIL_BACK_PASS_DEPTH_PASS                 Enum = 0x8803
	STENCIL_BACK_REF                             Enum = 0x8ca3
	STENCIL_BACK_VALUE_MASK                      Enum = 0x8ca4
	STENCIL_BACK_WRITEMASK                       Enum = 0x8ca5
	BLEND_COLOR                                  Enum = 0x8005
	BLEND_DST_RGB                                Enum = 0x80c8
	BLEND_SRC_RGB                                Enum = 0x80c9
	BLEND_DST_ALPHA                              Enum = 0x80ca
	BLEND_SRC_ALPHA                              Enum = 0x80cb
	BLEND_EQUATION_ALPHA                         Enum = 0x883d
	POLYGON_OFFSET_FACTOR                        Enum = 0x8038
	POLYGON_OFFSET_UNITS                         Enum = 0x2a00
	DEPTH_RANGE                                  Enum = 0xb70
	SAMPLE_COVERAGE_VALUE                        Enum = 0x80aa
	SAMPLE_COVERAGE_INVERT                       Enum = 0x80ab
	LOGIC_OP_MODE                                Enum = 0xbf0
	COLOR_LOGIC_OP                               Enum = 0xbf2
	PRIMITIVE_RESTART                            Enum = 0x8f9d
	PRIMITIVE_RESTART_INDEX                      Enum = 0x8f9e
	POINT_FADE_THRESHOLD_SIZE                    Enum = 0x8128
	FLOAT_MAT2                                   Enum = 0x8b5a
	FLOAT_MAT3                                   Enum = 0x8b5b
	ACTIVE_UNIFORM_BLOCKS                        Enum = 0x8a36
	COMPRESSED_RGBA_S3TC_DXT1_EXT                Enum = 0x83f1
	COMPRESSED_RGBA_S3TC_DXT5_EXT                Enum = 0x83f3
	KEEP                                         Enum = 0x1e00
	INCR                                         Enum = 0x1e02
)

// Bitfield values. These share numbers with the enumerants above and are
// never looked up by name.
const (
	DEPTH_BUFFER_BIT          = 0x100
	STENCIL_BUFFER_BIT        = 0x400
	COLOR_BUFFER_BIT          = 0x4000
	MAP_READ_BIT              = 0x1
	MAP_WRITE_BIT             = 0x2
	MAP_INVALIDATE_RANGE_BIT  = 0x4
	MAP_INVALIDATE_BUFFER_BIT = 0x8
	MAP_FLUSH_EXPLICIT_BIT    = 0x10
	MAP_UNSYNCHRONIZED_BIT    = 0x20
	VERTEX_SHADER_BIT         = 0x1
	FRAGMENT_SHADER_BIT       = 0x2
	GEOMETRY_SHADER_BIT       = 0x4
	ALL_SHADER_BITS           = 0xffffffff
	SYNC_FLUSH_COMMANDS_BIT   = 0x1
	INVALID_INDEX             = 0xffffffff
)

// enumNames lists the printable names, first name wins for shared values.
var enumNames = [...]struct {
	value Enum
	name  string
}{
	{NONE, "GL_NONE"},
	{NO_ERROR, "GL_NO_ERROR"},
	{ZERO, "GL_ZERO"},
	{ONE, "GL_ONE"},
	{POINTS, "GL_POINTS"},
	{LINES, "GL_LINES"},
	{LINE_STRIP, "GL_LINE_STRIP"},
	{TRIANGLES, "GL_TRIANGLES"},
	{TRIANGLE_STRIP, "GL_TRIANGLE_STRIP"},
	{TRIANGLE_FAN, "GL_TRIANGLE_FAN"},
	{QUADS, "GL_QUADS"},
	{INVALID_ENUM, "GL_INVALID_ENUM"},
	{INVALID_VALUE, "GL_INVALID_VALUE"},
	{INVALID_OPERATION, "GL_INVALID_OPERATION"},
	{STACK_OVERFLOW, "GL_STACK_OVERFLOW"},
	{STACK_UNDERFLOW, "GL_STACK_UNDERFLOW"},
	{OUT_OF_MEMORY, "GL_OUT_OF_MEMORY"},
	{INVALID_FRAMEBUFFER_OPERATION, "GL_INVALID_FRAMEBUFFER_OPERATION"},
	{FRONT, "GL_FRONT"},
	{BACK, "GL_BACK"},
	{FRONT_AND_BACK, "GL_FRONT_AND_BACK"},
	{CW, "GL_CW"},
	{CCW, "GL_CCW"},
	{NEVER, "GL_NEVER"},
	{LESS, "GL_LESS"},
	{EQUAL, "GL_EQUAL"},
	{LEQUAL, "GL_LEQUAL"},
	{ALWAYS, "GL_ALWAYS"},
	{SRC_ALPHA, "GL_SRC_ALPHA"},
	{ONE_MINUS_SRC_ALPHA, "GL_ONE_MINUS_SRC_ALPHA"},
	{CURRENT_COLOR, "GL_CURRENT_COLOR"},
	{CURRENT_NORMAL, "GL_CURRENT_NORMAL"},
	{CURRENT_TEXTURE_COORDS, "GL_CURRENT_TEXTURE_COORDS"},
	{POINT_SIZE, "GL_POINT_SIZE"},
	{LINE_WIDTH, "GL_LINE_WIDTH"},
	{POLYGON_MODE, "GL_POLYGON_MODE"},
	{POLYGON_STIPPLE, "GL_POLYGON_STIPPLE"},
	{LIST_MODE, "GL_LIST_MODE"},
	{LIST_BASE, "GL_LIST_BASE"},
	{LIST_INDEX, "GL_LIST_INDEX"},
	{CULL_FACE, "GL_CULL_FACE"},
	{CULL_FACE_MODE, "GL_CULL_FACE_MODE"},
	{FRONT_FACE, "GL_FRONT_FACE"},
	{LIGHTING, "GL_LIGHTING"},
	{COLOR_MATERIAL, "GL_COLOR_MATERIAL"},
	{FOG, "GL_FOG"},
	{DEPTH_TEST, "GL_DEPTH_TEST"},
	{DEPTH_CLEAR_VALUE, "GL_DEPTH_CLEAR_VALUE"},
	{DEPTH_FUNC, "GL_DEPTH_FUNC"},
	{STENCIL_TEST, "GL_STENCIL_TEST"},
	{STENCIL_CLEAR_VALUE, "GL_STENCIL_CLEAR_VALUE"},
	{NORMALIZE, "GL_NORMALIZE"},
	{VIEWPORT, "GL_VIEWPORT"},
	{MATRIX_MODE, "GL_MATRIX_MODE"},
	{MODELVIEW_MATRIX, "GL_MODELVIEW_MATRIX"},
	{PROJECTION_MATRIX, "GL_PROJECTION_MATRIX"},
	{TEXTURE_MATRIX, "GL_TEXTURE_MATRIX"},
	{DITHER, "GL_DITHER"},
	{BLEND_DST, "GL_BLEND_DST"},
	{BLEND_SRC, "GL_BLEND_SRC"},
	{BLEND, "GL_BLEND"},
	{DRAW_BUFFER, "GL_DRAW_BUFFER"},
	{READ_BUFFER, "GL_READ_BUFFER"},
	{SCISSOR_BOX, "GL_SCISSOR_BOX"},
	{SCISSOR_TEST, "GL_SCISSOR_TEST"},
	{COLOR_CLEAR_VALUE, "GL_COLOR_CLEAR_VALUE"},
	{RENDER_MODE, "GL_RENDER_MODE"},
	{SHADE_MODEL, "GL_SHADE_MODEL"},
	{UNPACK_ALIGNMENT, "GL_UNPACK_ALIGNMENT"},
	{PACK_ALIGNMENT, "GL_PACK_ALIGNMENT"},
	{MAX_LIGHTS, "GL_MAX_LIGHTS"},
	{TEXTURE_1D, "GL_TEXTURE_1D"},
	{TEXTURE_2D, "GL_TEXTURE_2D"},
	{TEXTURE_WIDTH, "GL_TEXTURE_WIDTH"},
	{TEXTURE_HEIGHT, "GL_TEXTURE_HEIGHT"},
	{TEXTURE_INTERNAL_FORMAT, "GL_TEXTURE_INTERNAL_FORMAT"},
	{BYTE, "GL_BYTE"},
	{UNSIGNED_BYTE, "GL_UNSIGNED_BYTE"},
	{SHORT, "GL_SHORT"},
	{UNSIGNED_SHORT, "GL_UNSIGNED_SHORT"},
	{INT, "GL_INT"},
	{UNSIGNED_INT, "GL_UNSIGNED_INT"},
	{FLOAT, "GL_FLOAT"},
	{DOUBLE, "GL_DOUBLE"},
	{COMPILE, "GL_COMPILE"},
	{COMPILE_AND_EXECUTE, "GL_COMPILE_AND_EXECUTE"},
	{AMBIENT, "GL_AMBIENT"},
	{DIFFUSE, "GL_DIFFUSE"},
	{SPECULAR, "GL_SPECULAR"},
	{POSITION, "GL_POSITION"},
	{EMISSION, "GL_EMISSION"},
	{SHININESS, "GL_SHININESS"},
	{AMBIENT_AND_DIFFUSE, "GL_AMBIENT_AND_DIFFUSE"},
	{MODELVIEW, "GL_MODELVIEW"},
	{PROJECTION, "GL_PROJECTION"},
	{TEXTURE, "GL_TEXTURE"},
	{COLOR, "GL_COLOR"},
	{DEPTH, "GL_DEPTH"},
	{STENCIL, "GL_STENCIL"},
	{RED, "GL_RED"},
	{DEPTH_COMPONENT, "GL_DEPTH_COMPONENT"},
	{RGB, "GL_RGB"},
	{RGBA, "GL_RGBA"},
	{FLAT, "GL_FLAT"},
	{SMOOTH, "GL_SMOOTH"},
	{RENDER, "GL_RENDER"},
	{FEEDBACK, "GL_FEEDBACK"},
	{SELECT, "GL_SELECT"},
	{REPLACE, "GL_REPLACE"},
	{MODULATE, "GL_MODULATE"},
	{DECAL, "GL_DECAL"},
	{TEXTURE_ENV_MODE, "GL_TEXTURE_ENV_MODE"},
	{TEXTURE_ENV_COLOR, "GL_TEXTURE_ENV_COLOR"},
	{TEXTURE_ENV, "GL_TEXTURE_ENV"},
	{NEAREST, "GL_NEAREST"},
	{LINEAR, "GL_LINEAR"},
	{NEAREST_MIPMAP_NEAREST, "GL_NEAREST_MIPMAP_NEAREST"},
	{LINEAR_MIPMAP_LINEAR, "GL_LINEAR_MIPMAP_LINEAR"},
	{TEXTURE_MAG_FILTER, "GL_TEXTURE_MAG_FILTER"},
	{TEXTURE_MIN_FILTER, "GL_TEXTURE_MIN_FILTER"},
	{TEXTURE_WRAP_S, "GL_TEXTURE_WRAP_S"},
	{TEXTURE_WRAP_T, "GL_TEXTURE_WRAP_T"},
	{REPEAT, "GL_REPEAT"},
	{LIGHT0, "GL_LIGHT0"},
	{POLYGON_OFFSET_FILL, "GL_POLYGON_OFFSET_FILL"},
	{RGB8, "GL_RGB8"},
	{RGBA8, "GL_RGBA8"},
	{TEXTURE_BINDING_1D, "GL_TEXTURE_BINDING_1D"},
	{TEXTURE_BINDING_2D, "GL_TEXTURE_BINDING_2D"},
	{TEXTURE_BINDING_3D, "GL_TEXTURE_BINDING_3D"},
	{TEXTURE_3D, "GL_TEXTURE_3D"},
	{TEXTURE_DEPTH, "GL_TEXTURE_DEPTH"},
	{TEXTURE_WRAP_R, "GL_TEXTURE_WRAP_R"},
	{VERTEX_ARRAY, "GL_VERTEX_ARRAY"},
	{NORMAL_ARRAY, "GL_NORMAL_ARRAY"},
	{COLOR_ARRAY, "GL_COLOR_ARRAY"},
	{TEXTURE_COORD_ARRAY, "GL_TEXTURE_COORD_ARRAY"},
	{SAMPLES, "GL_SAMPLES"},
	{CLAMP_TO_EDGE, "GL_CLAMP_TO_EDGE"},
	{TEXTURE_BASE_LEVEL, "GL_TEXTURE_BASE_LEVEL"},
	{TEXTURE_MAX_LEVEL, "GL_TEXTURE_MAX_LEVEL"},
	{DEPTH_COMPONENT24, "GL_DEPTH_COMPONENT24"},
	{FRAMEBUFFER_UNDEFINED, "GL_FRAMEBUFFER_UNDEFINED"},
	{DEPTH_STENCIL_ATTACHMENT, "GL_DEPTH_STENCIL_ATTACHMENT"},
	{PROGRAM_SEPARABLE, "GL_PROGRAM_SEPARABLE"},
	{ACTIVE_PROGRAM, "GL_ACTIVE_PROGRAM"},
	{PROGRAM_PIPELINE_BINDING, "GL_PROGRAM_PIPELINE_BINDING"},
	{BUFFER, "GL_BUFFER"},
	{SHADER, "GL_SHADER"},
	{PROGRAM, "GL_PROGRAM"},
	{QUERY, "GL_QUERY"},
	{PROGRAM_PIPELINE, "GL_PROGRAM_PIPELINE"},
	{SAMPLER, "GL_SAMPLER"},
	{DISPLAY_LIST, "GL_DISPLAY_LIST"},
	{TEXTURE0, "GL_TEXTURE0"},
	{ACTIVE_TEXTURE, "GL_ACTIVE_TEXTURE"},
	{CLIENT_ACTIVE_TEXTURE, "GL_CLIENT_ACTIVE_TEXTURE"},
	{MAX_TEXTURE_UNITS, "GL_MAX_TEXTURE_UNITS"},
	{TEXTURE_RECTANGLE, "GL_TEXTURE_RECTANGLE"},
	{DEPTH_STENCIL, "GL_DEPTH_STENCIL"},
	{TEXTURE_CUBE_MAP, "GL_TEXTURE_CUBE_MAP"},
	{TEXTURE_BINDING_CUBE_MAP, "GL_TEXTURE_BINDING_CUBE_MAP"},
	{TEXTURE_CUBE_MAP_POSITIVE_X, "GL_TEXTURE_CUBE_MAP_POSITIVE_X"},
	{VERTEX_ARRAY_BINDING, "GL_VERTEX_ARRAY_BINDING"},
	{VERTEX_PROGRAM_ARB, "GL_VERTEX_PROGRAM_ARB"},
	{VERTEX_ATTRIB_ARRAY_ENABLED, "GL_VERTEX_ATTRIB_ARRAY_ENABLED"},
	{VERTEX_ATTRIB_ARRAY_SIZE, "GL_VERTEX_ATTRIB_ARRAY_SIZE"},
	{VERTEX_ATTRIB_ARRAY_STRIDE, "GL_VERTEX_ATTRIB_ARRAY_STRIDE"},
	{VERTEX_ATTRIB_ARRAY_TYPE, "GL_VERTEX_ATTRIB_ARRAY_TYPE"},
	{CURRENT_VERTEX_ATTRIB, "GL_CURRENT_VERTEX_ATTRIB"},
	{PROGRAM_LENGTH_ARB, "GL_PROGRAM_LENGTH_ARB"},
	{PROGRAM_STRING_ARB, "GL_PROGRAM_STRING_ARB"},
	{VERTEX_ATTRIB_ARRAY_POINTER, "GL_VERTEX_ATTRIB_ARRAY_POINTER"},
	{PROGRAM_BINDING_ARB, "GL_PROGRAM_BINDING_ARB"},
	{BUFFER_SIZE, "GL_BUFFER_SIZE"},
	{BUFFER_USAGE, "GL_BUFFER_USAGE"},
	{FRAGMENT_PROGRAM_ARB, "GL_FRAGMENT_PROGRAM_ARB"},
	{QUERY_RESULT, "GL_QUERY_RESULT"},
	{QUERY_RESULT_AVAILABLE, "GL_QUERY_RESULT_AVAILABLE"},
	{MAX_VERTEX_ATTRIBS, "GL_MAX_VERTEX_ATTRIBS"},
	{VERTEX_ATTRIB_ARRAY_NORMALIZED, "GL_VERTEX_ATTRIB_ARRAY_NORMALIZED"},
	{PROGRAM_FORMAT_ASCII_ARB, "GL_PROGRAM_FORMAT_ASCII_ARB"},
	{PROGRAM_FORMAT_ARB, "GL_PROGRAM_FORMAT_ARB"},
	{ARRAY_BUFFER, "GL_ARRAY_BUFFER"},
	{ELEMENT_ARRAY_BUFFER, "GL_ELEMENT_ARRAY_BUFFER"},
	{ARRAY_BUFFER_BINDING, "GL_ARRAY_BUFFER_BINDING"},
	{ELEMENT_ARRAY_BUFFER_BINDING, "GL_ELEMENT_ARRAY_BUFFER_BINDING"},
	{VERTEX_ATTRIB_ARRAY_BUFFER_BINDING, "GL_VERTEX_ATTRIB_ARRAY_BUFFER_BINDING"},
	{READ_ONLY, "GL_READ_ONLY"},
	{WRITE_ONLY, "GL_WRITE_ONLY"},
	{READ_WRITE, "GL_READ_WRITE"},
	{BUFFER_ACCESS, "GL_BUFFER_ACCESS"},
	{BUFFER_MAPPED, "GL_BUFFER_MAPPED"},
	{TIME_ELAPSED, "GL_TIME_ELAPSED"},
	{STREAM_DRAW, "GL_STREAM_DRAW"},
	{STATIC_DRAW, "GL_STATIC_DRAW"},
	{DYNAMIC_DRAW, "GL_DYNAMIC_DRAW"},
	{PIXEL_PACK_BUFFER, "GL_PIXEL_PACK_BUFFER"},
	{PIXEL_UNPACK_BUFFER, "GL_PIXEL_UNPACK_BUFFER"},
	{PIXEL_PACK_BUFFER_BINDING, "GL_PIXEL_PACK_BUFFER_BINDING"},
	{PIXEL_UNPACK_BUFFER_BINDING, "GL_PIXEL_UNPACK_BUFFER_BINDING"},
	{DEPTH24_STENCIL8, "GL_DEPTH24_STENCIL8"},
	{SAMPLES_PASSED, "GL_SAMPLES_PASSED"},
	{SAMPLER_BINDING, "GL_SAMPLER_BINDING"},
	{UNIFORM_BUFFER, "GL_UNIFORM_BUFFER"},
	{UNIFORM_BUFFER_BINDING, "GL_UNIFORM_BUFFER_BINDING"},
	{FRAGMENT_SHADER, "GL_FRAGMENT_SHADER"},
	{VERTEX_SHADER, "GL_VERTEX_SHADER"},
	{MAX_COMBINED_TEXTURE_IMAGE_UNITS, "GL_MAX_COMBINED_TEXTURE_IMAGE_UNITS"},
	{SHADER_TYPE, "GL_SHADER_TYPE"},
	{DELETE_STATUS, "GL_DELETE_STATUS"},
	{COMPILE_STATUS, "GL_COMPILE_STATUS"},
	{LINK_STATUS, "GL_LINK_STATUS"},
	{VALIDATE_STATUS, "GL_VALIDATE_STATUS"},
	{ATTACHED_SHADERS, "GL_ATTACHED_SHADERS"},
	{ACTIVE_UNIFORMS, "GL_ACTIVE_UNIFORMS"},
	{SHADER_SOURCE_LENGTH, "GL_SHADER_SOURCE_LENGTH"},
	{CURRENT_PROGRAM, "GL_CURRENT_PROGRAM"},
	{TEXTURE_2D_ARRAY, "GL_TEXTURE_2D_ARRAY"},
	{PRIMITIVES_GENERATED, "GL_PRIMITIVES_GENERATED"},
	{TRANSFORM_FEEDBACK_BUFFER, "GL_TRANSFORM_FEEDBACK_BUFFER"},
	{ANY_SAMPLES_PASSED, "GL_ANY_SAMPLES_PASSED"},
	{FRAMEBUFFER_BINDING, "GL_FRAMEBUFFER_BINDING"},
	{RENDERBUFFER_BINDING, "GL_RENDERBUFFER_BINDING"},
	{READ_FRAMEBUFFER, "GL_READ_FRAMEBUFFER"},
	{DRAW_FRAMEBUFFER, "GL_DRAW_FRAMEBUFFER"},
	{READ_FRAMEBUFFER_BINDING, "GL_READ_FRAMEBUFFER_BINDING"},
	{RENDERBUFFER_SAMPLES, "GL_RENDERBUFFER_SAMPLES"},
	{FRAMEBUFFER_ATTACHMENT_OBJECT_TYPE, "GL_FRAMEBUFFER_ATTACHMENT_OBJECT_TYPE"},
	{FRAMEBUFFER_ATTACHMENT_OBJECT_NAME, "GL_FRAMEBUFFER_ATTACHMENT_OBJECT_NAME"},
	{FRAMEBUFFER_ATTACHMENT_TEXTURE_LEVEL, "GL_FRAMEBUFFER_ATTACHMENT_TEXTURE_LEVEL"},
	{FRAMEBUFFER_COMPLETE, "GL_FRAMEBUFFER_COMPLETE"},
	{FRAMEBUFFER_INCOMPLETE_ATTACHMENT, "GL_FRAMEBUFFER_INCOMPLETE_ATTACHMENT"},
	{FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT, "GL_FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT"},
	{COLOR_ATTACHMENT0, "GL_COLOR_ATTACHMENT0"},
	{COLOR_ATTACHMENT1, "GL_COLOR_ATTACHMENT1"},
	{DEPTH_ATTACHMENT, "GL_DEPTH_ATTACHMENT"},
	{STENCIL_ATTACHMENT, "GL_STENCIL_ATTACHMENT"},
	{FRAMEBUFFER, "GL_FRAMEBUFFER"},
	{RENDERBUFFER, "GL_RENDERBUFFER"},
	{RENDERBUFFER_WIDTH, "GL_RENDERBUFFER_WIDTH"},
	{RENDERBUFFER_HEIGHT, "GL_RENDERBUFFER_HEIGHT"},
	{RENDERBUFFER_INTERNAL_FORMAT, "GL_RENDERBUFFER_INTERNAL_FORMAT"},
	{GEOMETRY_SHADER, "GL_GEOMETRY_SHADER"},
	{COPY_READ_BUFFER, "GL_COPY_READ_BUFFER"},
	{COPY_WRITE_BUFFER, "GL_COPY_WRITE_BUFFER"},
	{TEXTURE_2D_MULTISAMPLE, "GL_TEXTURE_2D_MULTISAMPLE"},
	{TEXTURE_SAMPLES, "GL_TEXTURE_SAMPLES"},
	{OBJECT_TYPE, "GL_OBJECT_TYPE"},
	{SYNC_CONDITION, "GL_SYNC_CONDITION"},
	{SYNC_STATUS, "GL_SYNC_STATUS"},
	{SYNC_FLAGS, "GL_SYNC_FLAGS"},
	{SYNC_FENCE, "GL_SYNC_FENCE"},
	{SYNC_GPU_COMMANDS_COMPLETE, "GL_SYNC_GPU_COMMANDS_COMPLETE"},
	{UNSIGNALED, "GL_UNSIGNALED"},
	{SIGNALED, "GL_SIGNALED"},
	{ALREADY_SIGNALED, "GL_ALREADY_SIGNALED"},
	{TIMEOUT_EXPIRED, "GL_TIMEOUT_EXPIRED"},
	{CONDITION_SATISFIED, "GL_CONDITION_SATISFIED"},
	{WAIT_FAILED, "GL_WAIT_FAILED"},
	{BUFFER_ACCESS_FLAGS, "GL_BUFFER_ACCESS_FLAGS"},
	{BUFFER_MAP_LENGTH, "GL_BUFFER_MAP_LENGTH"},
	{BUFFER_MAP_OFFSET, "GL_BUFFER_MAP_OFFSET"},
	{COMPUTE_SHADER, "GL_COMPUTE_SHADER"},
	{DEPTH_WRITEMASK, "GL_DEPTH_WRITEMASK"},
	{COLOR_WRITEMASK, "GL_COLOR_WRITEMASK"},
	{TIMESTAMP, "GL_TIMESTAMP"},
	{FLOAT_VEC2, "GL_FLOAT_VEC2"},
	{FLOAT_VEC3, "GL_FLOAT_VEC3"},
	{FLOAT_VEC4, "GL_FLOAT_VEC4"},
	{INT_VEC2, "GL_INT_VEC2"},
	{INT_VEC3, "GL_INT_VEC3"},
	{INT_VEC4, "GL_INT_VEC4"},
	{BOOL, "GL_BOOL"},
	{FLOAT_MAT4, "GL_FLOAT_MAT4"},
	{SAMPLER_2D, "GL_SAMPLER_2D"},
	{ACTIVE_UNIFORM_MAX_LENGTH, "GL_ACTIVE_UNIFORM_MAX_LENGTH"},
	{INFO_LOG_LENGTH, "GL_INFO_LOG_LENGTH"},
	{MAX_PROGRAM_LOCAL_PARAMETERS_ARB, "GL_MAX_PROGRAM_LOCAL_PARAMETERS_ARB"},
	{MAX_PROGRAM_ENV_PARAMETERS_ARB, "GL_MAX_PROGRAM_ENV_PARAMETERS_ARB"},
	{VERTEX_ARRAY_SIZE, "GL_VERTEX_ARRAY_SIZE"},
	{VERTEX_ARRAY_TYPE, "GL_VERTEX_ARRAY_TYPE"},
	{VERTEX_ARRAY_STRIDE, "GL_VERTEX_ARRAY_STRIDE"},
	{NORMAL_ARRAY_TYPE, "GL_NORMAL_ARRAY_TYPE"},
	{NORMAL_ARRAY_STRIDE, "GL_NORMAL_ARRAY_STRIDE"},
	{COLOR_ARRAY_SIZE, "GL_COLOR_ARRAY_SIZE"},
	{COLOR_ARRAY_TYPE, "GL_COLOR_ARRAY_TYPE"},
	{COLOR_ARRAY_STRIDE, "GL_COLOR_ARRAY_STRIDE"},
	{TEXTURE_COORD_ARRAY_SIZE, "GL_TEXTURE_COORD_ARRAY_SIZE"},
	{TEXTURE_COORD_ARRAY_TYPE, "GL_TEXTURE_COORD_ARRAY_TYPE"},
	{TEXTURE_COORD_ARRAY_STRIDE, "GL_TEXTURE_COORD_ARRAY_STRIDE"},
	{VERTEX_ARRAY_POINTER, "GL_VERTEX_ARRAY_POINTER"},
	{NORMAL_ARRAY_POINTER, "GL_NORMAL_ARRAY_POINTER"},
	{COLOR_ARRAY_POINTER, "GL_COLOR_ARRAY_POINTER"},
	{TEXTURE_COORD_ARRAY_POINTER, "GL_TEXTURE_COORD_ARRAY_POINTER"},
	{VERTEX_ARRAY_BUFFER_BINDING, "GL_VERTEX_ARRAY_BUFFER_BINDING"},
	{NORMAL_ARRAY_BUFFER_BINDING, "GL_NORMAL_ARRAY_BUFFER_BINDING"},
	{COLOR_ARRAY_BUFFER_BINDING, "GL_COLOR_ARRAY_BUFFER_BINDING"},
	{TEXTURE_COORD_ARRAY_BUFFER_BINDING, "GL_TEXTURE_COORD_ARRAY_BUFFER_BINDING"},
	{VERTEX_ATTRIB_ARRAY_INTEGER, "GL_VERTEX_ATTRIB_ARRAY_INTEGER"},
	{VERTEX_ATTRIB_ARRAY_DIVISOR, "GL_VERTEX_ATTRIB_ARRAY_DIVISOR"},
	{FEEDBACK_BUFFER_SIZE, "GL_FEEDBACK_BUFFER_SIZE"},
	{SELECTION_BUFFER_SIZE, "GL_SELECTION_BUFFER_SIZE"},
	{NAME_STACK_DEPTH, "GL_NAME_STACK_DEPTH"},
	{MODELVIEW_STACK_DEPTH, "GL_MODELVIEW_STACK_DEPTH"},
	{CURRENT_RASTER_POSITION, "GL_CURRENT_RASTER_POSITION"},
	{BLEND_EQUATION, "GL_BLEND_EQUATION"},
	{STENCIL_FUNC, "GL_STENCIL_FUNC"},
	{UNPACK_ROW_LENGTH, "GL_UNPACK_ROW_LENGTH"},
	{PACK_ROW_LENGTH, "GL_PACK_ROW_LENGTH"},
	{LIGHT_MODEL_AMBIENT, "GL_LIGHT_MODEL_AMBIENT"},
	{FRAMEBUFFER_DEFAULT, "GL_FRAMEBUFFER_DEFAULT"},
	{LINE_LOOP, "GL_LINE_LOOP"},
	{POLYGON, "GL_POLYGON"},
	{FEEDBACK_2D, "GL_FEEDBACK_2D"},
	{FEEDBACK_3D, "GL_FEEDBACK_3D"},
	{FEEDBACK_3D_COLOR, "GL_FEEDBACK_3D_COLOR"},
	{PASS_THROUGH_TOKEN, "GL_PASS_THROUGH_TOKEN"},
	{POINT_TOKEN, "GL_POINT_TOKEN"},
	{LINE_TOKEN, "GL_LINE_TOKEN"},
	{POLYGON_TOKEN, "GL_POLYGON_TOKEN"},
	{MAX_NAME_STACK_DEPTH, "GL_MAX_NAME_STACK_DEPTH"},
	{MAX_LIST_NESTING, "GL_MAX_LIST_NESTING"},
	{VENDOR, "GL_VENDOR"},
	{RENDERER, "GL_RENDERER"},
	{VERSION, "GL_VERSION"},
	{EXTENSIONS, "GL_EXTENSIONS"},
	{ACTIVE_ATTRIBUTES, "GL_ACTIVE_ATTRIBUTES"},
	{TEXTURE_IMMUTABLE_FORMAT, "GL_TEXTURE_IMMUTABLE_FORMAT"},
	{TEXTURE_IMMUTABLE_LEVELS, "GL_TEXTURE_IMMUTABLE_LEVELS"},
	{FRAMEBUFFER_ATTACHMENT_TEXTURE_CUBE_MAP_FACE, "GL_FRAMEBUFFER_ATTACHMENT_TEXTURE_CUBE_MAP_FACE"},
	{FRAMEBUFFER_ATTACHMENT_TEXTURE_LAYER, "GL_FRAMEBUFFER_ATTACHMENT_TEXTURE_LAYER"},
	{STENCIL_VALUE_MASK, "GL_STENCIL_VALUE_MASK"},
	{STENCIL_FAIL, "GL_STENCIL_FAIL"},
	{STENCIL_PASS_DEPTH_FAIL, "GL_STENCIL_PASS_DEPTH_FAIL"},
	{STENCIL_PASS_DEPTH_PASS, "GL_STENCIL_PASS_DEPTH_PASS"},
	{STENCIL_REF, "GL_STENCIL_REF"},
	{STENCIL_WRITEMASK, "GL_STENCIL_WRITEMASK"},
	{STENCIL_BACK_FUNC, "GL_STENCIL_BACK_FUNC"},
	{STENCIL_BACK_FAIL, "GL_STENCIL_BACK_FAIL"},
	{STENCIL_BACK_PASS_DEPTH_FAIL, "GL_STENCIL_BACK_PASS_DEPTH_FAIL"},
	{STENCIL_BACK_PASS_DEPTH_PASS, "GL_STENCIL_BACK_PASS_DEPTH_PASS"},
	{STENCIL_BACK_REF, "GL_STENCIL_BACK_REF"},
	{STENCIL_BACK_VALUE_MASK, "GL_STENCIL_BACK_VALUE_MASK"},
	{STENCIL_BACK_WRITEMASK, "GL_STENCIL_BACK_WRITEMASK"},
	{BLEND_COLOR, "GL_BLEND_COLOR"},
	{BLEND_DST_RGB, "GL_BLEND_DST_RGB"},
	{BLEND_SRC_RGB, "GL_BLEND_SRC_RGB"},
	{BLEND_DST_ALPHA, "GL_BLEND_DST_ALPHA"},
	{BLEND_SRC_ALPHA, "GL_BLEND_SRC_ALPHA"},
	{BLEND_EQUATION_ALPHA, "GL_BLEND_EQUATION_ALPHA"},
	{POLYGON_OFFSET_FACTOR, "GL_POLYGON_OFFSET_FACTOR"},
	{POLYGON_OFFSET_UNITS, "GL_POLYGON_OFFSET_UNITS"},
	{DEPTH_RANGE, "GL_DEPTH_RANGE"},
	{SAMPLE_COVERAGE_VALUE, "GL_SAMPLE_COVERAGE_VALUE"},
	{SAMPLE_COVERAGE_INVERT, "GL_SAMPLE_COVERAGE_INVERT"},
	{LOGIC_OP_MODE, "GL_LOGIC_OP_MODE"},
	{COLOR_LOGIC_OP, "GL_COLOR_LOGIC_OP"},
	{PRIMITIVE_RESTART, "GL_PRIMITIVE_RESTART"},
	{PRIMITIVE_RESTART_INDEX, "GL_PRIMITIVE_RESTART_INDEX"},
	{POINT_FADE_THRESHOLD_SIZE, "GL_POINT_FADE_THRESHOLD_SIZE"},
	{FLOAT_MAT2, "GL_FLOAT_MAT2"},
	{FLOAT_MAT3, "GL_FLOAT_MAT3"},
	{ACTIVE_UNIFORM_BLOCKS, "GL_ACTIVE_UNIFORM_BLOCKS"},
	{COMPRESSED_RGBA_S3TC_DXT1_EXT, "GL_COMPRESSED_RGBA_S3TC_DXT1_EXT"},
	{COMPRESSED_RGBA_S3TC_DXT5_EXT, "GL_COMPRESSED_RGBA_S3TC_DXT5_EXT"},
	{KEEP, "GL_KEEP"},
	{INCR, "GL_INCR"},
}
