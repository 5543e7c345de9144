package segment

import (
	"shopperSpectrum/domain"
)

// ClassifySegment scales the RFM vector, assigns it to a cluster and maps the
// cluster to a label. An unmapped cluster yields domain.LabelUnknown, not an
// error. Scaler and model failures come back as *domain.ModelInvocationError.
func ClassifySegment(
	rfm domain.RFMInput,
	scaler domain.Scaler,
	model domain.ClusterModel,
	labels domain.ClusterLabelMap,
) (domain.Segment, error) {
	scaled, err := scaler.Transform(rfm.Vector())
	if err != nil {
		return domain.Segment{}, &domain.ModelInvocationError{Stage: "transform", Err: err}
	}

	cluster, err := model.Predict(scaled)
	if err != nil {
		return domain.Segment{}, &domain.ModelInvocationError{Stage: "predict", Err: err}
	}

	label := labels.Label(cluster)
	return domain.Segment{
		ClusterIndex: cluster,
		Label:        label,
		Color:        domain.SegmentColor(label),
	}, nil
}
