package feed

import "github.com/writermorphosis/writermorphosis-server/internal/domain"

// Tag cloud display sizes in pixels.
const (
	tagSizeMin = 14
	tagSizeMax = 20
)

// TagWeight pairs a tag with its computed display size.
type TagWeight struct {
	Tag      domain.Tag `json:"tag"`
	FontSize float64    `json:"font_size"`
}

// TagWeights maps each tag's count linearly from [min count, max count]
// onto [14, 20]. When every count is equal the scale is undefined, so all
// tags get the minimum size rather than dividing by zero.
func TagWeights(tags []domain.Tag) []TagWeight {
	if len(tags) == 0 {
		return nil
	}

	minCount, maxCount := tags[0].Count, tags[0].Count
	for _, tag := range tags[1:] {
		if tag.Count < minCount {
			minCount = tag.Count
		}
		if tag.Count > maxCount {
			maxCount = tag.Count
		}
	}

	out := make([]TagWeight, len(tags))
	for i, tag := range tags {
		size := float64(tagSizeMin)
		if maxCount > minCount {
			scale := float64(tag.Count-minCount) / float64(maxCount-minCount)
			size = tagSizeMin + scale*(tagSizeMax-tagSizeMin)
		}
		out[i] = TagWeight{Tag: tag, FontSize: size}
	}
	return out
}
