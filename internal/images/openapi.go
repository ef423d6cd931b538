package images

import "github.com/JaimeStill/dpi-lab/pkg/openapi"

type spec struct {
	ForDocument *openapi.Operation
	Render      *openapi.Operation
	Find        *openapi.Operation
	Data        *openapi.Operation
	Delete      *openapi.Operation
}

var documentParam = openapi.PathParam("documentId", "Document ID")

var Spec = spec{
	ForDocument: &openapi.Operation{
		Summary:     "List page images",
		Description: "List the rendered images of a document in page number order. Images rendered at a resolution the page no longer has are marked stale.",
		Parameters:  []*openapi.Parameter{documentParam},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseArray("Images", "Image"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Render: &openapi.Operation{
		Summary:     "Render pages",
		Description: "Render pages at their working resolution. Without pages every page is rendered; pages whose image is current are reused unless force is set.",
		Parameters:  []*openapi.Parameter{documentParam},
		RequestBody: openapi.RequestBodyJSON("RenderCommand", false),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseArray("Rendered images", "Image"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Find: &openapi.Operation{
		Summary:    "Find image",
		Parameters: []*openapi.Parameter{openapi.PathParam("id", "Image ID")},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Image metadata", "Image"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Data: &openapi.Operation{
		Summary:    "Image data",
		Parameters: []*openapi.Parameter{openapi.PathParam("id", "Image ID")},
		Responses: map[int]*openapi.Response{
			200: {
				Description: "Rendered page bytes",
				Content: map[string]*openapi.MediaType{
					"image/png":  {Schema: &openapi.Schema{Type: "string", Format: "binary"}},
					"image/jpeg": {Schema: &openapi.Schema{Type: "string", Format: "binary"}},
				},
			},
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Delete: &openapi.Operation{
		Summary:    "Delete image",
		Parameters: []*openapi.Parameter{openapi.PathParam("id", "Image ID")},
		Responses: map[int]*openapi.Response{
			204: {Description: "Image deleted"},
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Image": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":          {Type: "string", Format: "uuid"},
				"page_id":     {Type: "string", Format: "uuid"},
				"document_id": {Type: "string", Format: "uuid"},
				"page_number": {Type: "integer"},
				"format":      {Type: "string", Enum: []any{"png", "jpg"}},
				"dpi":         openapi.SchemaRef("DPI"),
				"storage_key": {Type: "string"},
				"size_bytes":  {Type: "integer", Format: "int64"},
				"rendered_at": {Type: "string", Format: "date-time"},
				"stale":       {Type: "boolean", Description: "Page resolution changed since rendering"},
			},
		},
		"RenderCommand": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"pages":  {Type: "array", Items: &openapi.Schema{Type: "string", Format: "uuid"}},
				"format": {Type: "string", Enum: []any{"png", "jpg"}, Default: "png"},
				"force":  {Type: "boolean", Description: "Render even when the image is current"},
			},
		},
	}
}
