package formatter

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/theoremus-urban-solutions/transitdb/requests"
)

// BuildProtoList converts answers into a google.protobuf.ListValue of Structs.
func BuildProtoList(answers []requests.Answer) (*structpb.ListValue, error) {
	list, err := structpb.NewList(WrapAnswers(answers))
	if err != nil {
		return nil, fmt.Errorf("failed to build answer list: %w", err)
	}
	return list, nil
}

// BuildProto serializes answers as a binary google.protobuf.ListValue
func (rb *ResponseBuilder) BuildProto(answers []requests.Answer) ([]byte, error) {
	list, err := BuildProtoList(answers)
	if err != nil {
		return nil, err
	}
	return proto.Marshal(list)
}
