package parser

import (
	"strings"

	"github.com/alex/strum/annotations"
	"github.com/alex/strum/types"
)

// applyEnumAnnotations reads the @strum and @discriminants annotations
// into the enum descriptor.
func (s *Scanner) applyEnumAnnotations(enum *types.EnumInfo) error {
	ann, _ := enum.Annotations.First(AnnotationStrum)

	for _, p := range ann.Params {
		switch strings.ToLower(p.Key) {
		case "serialize_all":
			style, err := types.ParseCaseStyle(p.Value)
			if err != nil {
				return newValidationError(ErrUnknownCaseStyle, enum.Name, "", ann.RawText, err.Error())
			}
			enum.SerializeAll = style
		case "":
			return newValidationError(ErrInvalidAnnotation, enum.Name, "", ann.RawText,
				"positional values are not allowed on @strum")
		default:
			if p.Value != "true" {
				return newValidationError(ErrInvalidAnnotation, enum.Name, "", ann.RawText,
					"unknown option "+p.Key)
			}
			c, err := ParseCapability(p.Key)
			if err != nil {
				return newValidationError(ErrUnknownCapability, enum.Name, "", ann.RawText,
					"unknown capability "+p.Key)
			}
			enum.Capabilities = append(enum.Capabilities, c)
		}
	}

	if len(enum.Capabilities) == 0 {
		caps, err := s.defaultCapabilities()
		if err != nil {
			return err
		}
		enum.Capabilities = caps
	}

	if dann, ok := enum.Annotations.First(AnnotationDiscriminants); ok {
		d := &types.DiscriminantsInfo{}
		d.Name = dann.GetParamValueOrDefault("name", "")
		if list, ok := dann.GetParamStringList("derive"); ok {
			for _, n := range list {
				c, err := ParseCapability(n)
				if err != nil {
					return newValidationError(ErrUnknownCapability, enum.Name, "", dann.RawText,
						"unknown derive capability "+n)
				}
				if c == types.CapMessage {
					return newValidationError(ErrInvalidAnnotation, enum.Name, "", dann.RawText,
						"message lookup cannot be derived on a discriminant companion")
				}
				d.Derive = append(d.Derive, c)
			}
		}
		enum.Discriminants = d
		enum.Capabilities = append(enum.Capabilities, types.CapDiscriminants)
	}

	return nil
}

// applyVariantAnnotations reads the @variant and @props annotations of
// one variant into its descriptor.
func applyVariantAnnotations(enumName string, v *types.VariantInfo) error {
	for _, ann := range v.Annotations {
		switch {
		case annotations.EqualNames(ann.Name, AnnotationVariant):
			if err := applyVariantParams(enumName, v, ann); err != nil {
				return err
			}
		case annotations.EqualNames(ann.Name, AnnotationProps):
			if err := addProps(enumName, v, ann.RawText, ann.Params); err != nil {
				return err
			}
		}
	}
	return nil
}

func applyVariantParams(enumName string, v *types.VariantInfo, ann annotations.Annotation) error {
	for _, p := range ann.Params {
		switch strings.ToLower(p.Key) {
		case "serialize", "":
			// Positional values are shorthand serialize aliases.
			v.Aliases = append(v.Aliases, p.Value)
		case "to_string", "tostring":
			if v.HasToString {
				return newValidationError(ErrInvalidAnnotation, enumName, v.Name, ann.RawText,
					"to_string may be given at most once")
			}
			v.ToString = p.Value
			v.HasToString = true
		case "default":
			v.Default = isTrue(p.Value)
		case "disabled":
			v.Disabled = isTrue(p.Value)
		case "message":
			v.Message = p.Value
			v.HasMessage = true
		case "detailed_message", "detailedmessage":
			v.DetailedMessage = p.Value
			v.HasDetailedMessage = true
		case "props":
			if err := addProps(enumName, v, ann.RawText, annotations.ParsePairs(p.Value)); err != nil {
				return err
			}
		default:
			return newValidationError(ErrInvalidAnnotation, enumName, v.Name, ann.RawText,
				"unknown option "+p.Key)
		}
	}
	return nil
}

// addProps appends property pairs, rejecting duplicate keys. Duplicate
// keys fail generation rather than silently overwriting.
func addProps(enumName string, v *types.VariantInfo, raw string, pairs []annotations.Param) error {
	for _, p := range pairs {
		if p.Key == "" {
			return newValidationError(ErrInvalidAnnotation, enumName, v.Name, raw,
				"properties must be key-value pairs")
		}
		if _, dup := v.Prop(p.Key); dup {
			return newValidationError(ErrDuplicateProp, enumName, v.Name, raw,
				"property "+p.Key+" given more than once")
		}
		v.Props = append(v.Props, types.Prop{Key: p.Key, Value: p.Value})
	}
	return nil
}

func isTrue(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "on":
		return true
	}
	return false
}
