package curve

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/arloliu/fitparam/endian"
	"github.com/arloliu/fitparam/errs"
	"github.com/arloliu/fitparam/format"
	"github.com/arloliu/fitparam/internal/logger"
	"github.com/arloliu/fitparam/internal/options"
)

// DefaultPrecision is the relative plotting precision requested from densities.
const DefaultPrecision = 1e-5

// SamplerOption configures a Sampler.
type SamplerOption = options.Option[*Sampler]

// WithPrecision sets the relative precision passed to Density.PlotCurve.
// It must be positive.
func WithPrecision(precision float64) SamplerOption {
	return options.New(func(s *Sampler) error {
		if !(precision > 0) {
			return fmt.Errorf("%w: %g", errs.ErrInvalidPrecision, precision)
		}
		s.precision = precision

		return nil
	})
}

// WithRestoreValue controls whether the sampled variable gets its previous
// value back once sampling returns.
func WithRestoreValue(restore bool) SamplerOption {
	return options.NoError(func(s *Sampler) {
		s.restore = restore
	})
}

// WithLogger sets the logger used for sampling traces. A nil logger discards
// all messages.
func WithLogger(l *log.Logger) SamplerOption {
	return options.NoError(func(s *Sampler) {
		if l == nil {
			l = logger.Discard()
		}
		s.logger = l
	})
}

// encodeConfig holds the settings of one Encode call.
type encodeConfig struct {
	encoding    format.EncodingType
	compression format.CompressionType
	engine      endian.EndianEngine
}

// EncodeOption configures Encode.
type EncodeOption = options.Option[*encodeConfig]

// WithEncoding selects how the float columns are laid out before
// compression. The default is format.TypeRaw; format.TypeGorilla shrinks
// smooth curves without a general-purpose codec.
func WithEncoding(encoding format.EncodingType) EncodeOption {
	return options.New(func(c *encodeConfig) error {
		if encoding != format.TypeRaw && encoding != format.TypeGorilla {
			return fmt.Errorf("%w: %s (%#x)", errs.ErrUnknownEncoding, encoding, uint8(encoding))
		}
		c.encoding = encoding

		return nil
	})
}

// WithCompression selects the payload codec. The default is
// format.CompressionNone.
func WithCompression(compression format.CompressionType) EncodeOption {
	return options.New(func(c *encodeConfig) error {
		if compression == 0 || compression > format.CompressionLZ4 {
			return fmt.Errorf("%w: %s (%#x)", errs.ErrUnknownCompression, compression, uint8(compression))
		}
		c.compression = compression

		return nil
	})
}

// WithBigEndian stores the header and columns in big-endian byte order.
// Little endian is the default.
func WithBigEndian() EncodeOption {
	return options.NoError(func(c *encodeConfig) {
		c.engine = endian.GetBigEndianEngine()
	})
}
