package documents

import (
	"github.com/JaimeStill/dpi-lab/internal/resolution"
	"github.com/JaimeStill/dpi-lab/pkg/openapi"
)

type spec struct {
	List   *openapi.Operation
	Upload *openapi.Operation
	Find   *openapi.Operation
	Rename *openapi.Operation
	Delete *openapi.Operation
}

var idParam = openapi.PathParam("id", "Document ID")

var Spec = spec{
	List: &openapi.Operation{
		Summary: "List documents",
		Description: "Page through documents, newest first. search matches name and filename; " +
			"sort takes a comma separated field list with a leading - for descending.",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("page", "integer", "Page number, from 1", false),
			openapi.QueryParam("page_size", "integer", "Documents per page", false),
			openapi.QueryParam("search", "string", "Text in name or filename", false),
			openapi.QueryParam("sort", "string", "Sort fields, e.g. -created_at", false),
			openapi.QueryParam("name", "string", "Name contains", false),
			openapi.QueryParam("content_type", "string", "Content type contains", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("One page of documents", "DocumentPage"),
		},
	},
	Upload: &openapi.Operation{
		Summary: "Upload document",
		Description: "Store a file. A PDF gets one page per PDF page, opened at dpi " +
			"or at the configured default resolution when dpi is omitted.",
		RequestBody: &openapi.RequestBody{
			Required: true,
			Content: map[string]*openapi.MediaType{
				"multipart/form-data": {Schema: &openapi.Schema{
					Type:     "object",
					Required: []string{"file"},
					Properties: map[string]*openapi.Schema{
						"file": {Type: "string", Format: "binary"},
						"name": {Type: "string", Description: "Display name, the filename when empty"},
						"dpi": {
							Type:        "integer",
							Description: "Starting page resolution",
							Minimum:     openapi.Bound(resolution.MinDPI),
							Maximum:     openapi.Bound(resolution.MaxDPI),
						},
					},
				}},
			},
		},
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Stored document", "Document"),
			400: openapi.ResponseRef("BadRequest"),
			413: {Description: "File too large"},
		},
	},
	Find: &openapi.Operation{
		Summary:    "Find document",
		Parameters: []*openapi.Parameter{idParam},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Document", "Document"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Rename: &openapi.Operation{
		Summary:     "Rename document",
		Parameters:  []*openapi.Parameter{idParam},
		RequestBody: openapi.RequestBodyJSON("RenameCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Renamed document", "Document"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Delete: &openapi.Operation{
		Summary:     "Delete document",
		Description: "Remove the document with its pages, their images and the stored file. Unknown ids succeed.",
		Parameters:  []*openapi.Parameter{idParam},
		Responses: map[int]*openapi.Response{
			204: {Description: "Deleted"},
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	document := &openapi.Schema{
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"id":           {Type: "string", Format: "uuid"},
			"name":         {Type: "string"},
			"filename":     {Type: "string"},
			"content_type": {Type: "string"},
			"size_bytes":   {Type: "integer", Format: "int64"},
			"page_count":   {Type: "integer", Description: "PDFs only"},
			"storage_key":  {Type: "string"},
			"created_at":   {Type: "string", Format: "date-time"},
			"updated_at":   {Type: "string", Format: "date-time"},
		},
	}

	page := &openapi.Schema{
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"data":        openapi.ArrayOf("Document"),
			"total":       {Type: "integer"},
			"page":        {Type: "integer"},
			"page_size":   {Type: "integer"},
			"total_pages": {Type: "integer"},
		},
	}

	return map[string]*openapi.Schema{
		"Document":     document,
		"DocumentPage": page,
		"RenameCommand": {
			Type:       "object",
			Required:   []string{"name"},
			Properties: map[string]*openapi.Schema{"name": {Type: "string"}},
		},
	}
}
