package test

import "github.com/papermeta/papermeta/internal/convert"

// SampleDoc is a synthetic paper text paired with the record its
// extraction should produce.
type SampleDoc struct {
	Name     string
	Filename string
	Tag      convert.TypeTag
	Text     string

	Authors  string
	Abstract string
	Keywords string
	Notes    string
}

// SampleDocs returns front-matter shapes seen in the wild: inline and
// bare abstract headers, Keywords and Index Terms lists, affiliation and
// contact noise, plus the degenerate scanned/unsupported cases.
func SampleDocs() []SampleDoc {
	return []SampleDoc{
		{
			Name:     "conference docx with inline abstract",
			Filename: "reproducibility.docx",
			Tag:      convert.TypeDOCX,
			Text: `Measuring reproducibility in data pipelines
Alice Johnson and Robert Green
School of Computing, Example University
alice.johnson@example.edu

Abstract: Reproducibility of published pipelines is rarely verified. We
audit 120 public repositories and find that fewer than half rebuild.
Keywords: reproducibility, data pipelines, auditing.

1 Introduction
Body text continues here.
`,
			Authors:  "Alice Johnson, Robert Green",
			Abstract: "Reproducibility of published pipelines is rarely verified. We audit 120 public repositories and find that fewer than half rebuild.",
			Keywords: "reproducibility, data pipelines, auditing",
		},
		{
			Name:     "journal pdf with bare header and index terms",
			Filename: "estimation.pdf",
			Tag:      convert.TypePDF,
			Text: `Adaptive channel estimation for wireless networks
John Q. Public, Jane Roe and Richard Miles
Dept. of Electrical Engineering, State Institute of Technology
{jpublic, jroe}@sit.example.edu

Abstract
Channel estimation under mobility remains difficult. We describe an
adaptive estimator that tracks fading statistics online and requires
no pilot redesign. Experiments on recorded traces show consistent
gains over static baselines.
Index Terms—channel estimation; adaptive filters; fading
I INTRODUCTION
Mobile receivers observe rapidly varying channels, and static
estimators trained offline degrade within seconds of deployment.
`,
			Authors:  "John Q. Public, Jane Roe, Richard Miles",
			Abstract: "Channel estimation under mobility remains difficult. We describe an adaptive estimator that tracks fading statistics online and requires no pilot redesign. Experiments on recorded traces show consistent gains over static baselines.",
			Keywords: "channel estimation, adaptive filters, fading",
		},
		{
			Name:     "short pdf with keywords glued onto the abstract",
			Filename: "note.pdf",
			Tag:      convert.TypePDF,
			Text: `A note on parsing noisy text
Carla Mendes, Liu Wei
Abstract: Extraction from converted documents loses structure. Keywords: parsing, noise
`,
			Authors:  "Carla Mendes, Liu Wei",
			Abstract: "Extraction from converted documents loses structure.",
			// The glued marker is stripped from the abstract, but the
			// keyword scan only matches line-initial headers, so nothing
			// is recovered here.
			Keywords: "",
			Notes:    "Possible scanned/non-searchable PDF.",
		},
		{
			Name:     "scanned pdf with no text yield",
			Filename: "scanned.pdf",
			Tag:      convert.TypePDF,
			Text:     "",
			Notes:    "Possible scanned/non-searchable PDF.",
		},
		{
			Name:     "unsupported plain text file",
			Filename: "readme.txt",
			Tag:      convert.TypeUnknown,
			Text:     "Abstract: This never runs through the extractors.\n",
			Notes:    "Unsupported file type",
		},
	}
}
