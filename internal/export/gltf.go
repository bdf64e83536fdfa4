package export

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/Faultbox/parasurf/internal/finalize"
)

// BuildGLTF converts m into a glTF document with a single mesh, node and
// scene. UVs are written as sampled, in parameter units.
func BuildGLTF(m *finalize.Mesh) (*gltf.Document, error) {
	for i, p := range m.Positions {
		if !p.IsFinite() {
			return nil, fmt.Errorf("vertex %d is not finite (%v)", i, p)
		}
	}

	positions := make([][3]float32, len(m.Positions))
	for i, p := range m.Positions {
		positions[i] = p.Array()
	}
	uvs := make([][2]float32, len(m.UVs))
	for i, uv := range m.UVs {
		uvs[i] = [2]float32{uv.X, uv.Y}
	}

	doc := gltf.NewDocument()
	doc.Asset.Generator = "parasurf"

	attrs := map[string]int{
		gltf.POSITION:   modeler.WritePosition(doc, positions),
		gltf.TEXCOORD_0: modeler.WriteTextureCoord(doc, uvs),
	}
	if len(m.Normals) == len(m.Positions) {
		normals := make([][3]float32, len(m.Normals))
		for i, n := range m.Normals {
			normals[i] = n.Array()
		}
		attrs[gltf.NORMAL] = modeler.WriteNormal(doc, normals)
	}
	if len(m.Tangents) == len(m.Positions) {
		attrs[gltf.TANGENT] = modeler.WriteTangent(doc, m.Tangents)
	}

	doc.Meshes = []*gltf.Mesh{{
		Name: m.Name,
		Primitives: []*gltf.Primitive{{
			Indices:    gltf.Index(modeler.WriteIndices(doc, m.Indices)),
			Attributes: attrs,
			Mode:       gltf.PrimitiveTriangles,
		}},
	}}
	doc.Nodes = []*gltf.Node{{Name: m.Name, Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)

	return doc, nil
}

// SaveGLB writes m to path as binary glTF.
func SaveGLB(path string, m *finalize.Mesh) error {
	doc, err := BuildGLTF(m)
	if err != nil {
		return fmt.Errorf("gltf %s: %w", path, err)
	}
	if err := gltf.SaveBinary(doc, path); err != nil {
		return fmt.Errorf("gltf %s: %w", path, err)
	}
	return nil
}
