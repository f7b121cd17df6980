package imapparser

// parseBody parses a BODY/BODYSTRUCTURE value, RFC 3501 section 7.4.2's
// body production. The grammar is self-referential via multipart parts
// and via message/rfc822's nested body, so this is the one genuinely
// recursive production in the grammar; there are no cycles since each
// recursive call consumes strictly fewer bytes of the line.
func (p *parser) parseBody() (*Body, error) {
	if err := p.expectByte('('); err != nil {
		return nil, err
	}

	b := &Body{}
	if p.cur() == '(' {
		if err := p.parseMultipartBody(b); err != nil {
			return nil, err
		}
	} else {
		if err := p.parseSinglePartBody(b); err != nil {
			return nil, err
		}
	}

	if err := p.expectByte(')'); err != nil {
		return nil, err
	}
	return b, nil
}

// parseMultipartBody parses the multipart alternative:
//
//	body-type-mpart = 1*body SP media-subtype
//	                  [SP body-ext-mpart]
func (p *parser) parseMultipartBody(b *Body) error {
	b.Multipart = true
	for {
		part, err := p.parseBody()
		if err != nil {
			return err
		}
		b.Parts = append(b.Parts, part)
		if p.cur() != '(' {
			break
		}
	}

	if err := p.expectSP(); err != nil {
		return err
	}
	subtypeRaw, err := p.parseString()
	if err != nil {
		return err
	}
	b.MultipartSubtype, err = toASCIILower(p, subtypeRaw)
	if err != nil {
		return err
	}

	// body-ext-mpart = body-fld-param
	//                  [SP body-fld-dsp [SP body-fld-lang
	//                  [SP body-fld-loc *(SP body-extension)]]]
	b.Fields.Params = map[string]string{}
	if p.cur() != ' ' {
		return nil
	}
	p.advance(1)
	b.Fields.Params, err = p.parseBodyFldParam()
	if err != nil {
		return err
	}

	if p.cur() != ' ' {
		return nil
	}
	p.advance(1)
	b.Disposition, err = p.parseBodyFldDsp()
	if err != nil {
		return err
	}

	if p.cur() != ' ' {
		return nil
	}
	p.advance(1)
	b.Lang, b.HasLang, err = p.parseBodyFldLang()
	if err != nil {
		return err
	}

	if p.cur() != ' ' {
		return nil
	}
	p.advance(1)
	b.Location, b.HasLocation, err = p.parseNString()
	if err != nil {
		return err
	}

	for p.cur() == ' ' {
		p.advance(1)
		ext, err := p.parseBodyExtension()
		if err != nil {
			return err
		}
		b.Extension = append(b.Extension, ext)
	}
	return nil
}

// parseSinglePartBody parses the non-multipart alternative: basic, text,
// or message/rfc822, which share body-fields and the single-part
// extension tail and differ only in the fields appended right after
// body-fields.
//
//	body-type-1part = (body-type-basic / body-type-msg / body-type-text)
//	                  [SP body-ext-1part]
func (p *parser) parseSinglePartBody(b *Body) error {
	typeRaw, err := p.parseString()
	if err != nil {
		return err
	}
	b.Type, err = toASCIILower(p, typeRaw)
	if err != nil {
		return err
	}
	if err := p.expectSP(); err != nil {
		return err
	}
	subtypeRaw, err := p.parseString()
	if err != nil {
		return err
	}
	b.Subtype, err = toASCIILower(p, subtypeRaw)
	if err != nil {
		return err
	}
	if err := p.expectSP(); err != nil {
		return err
	}

	b.Fields, err = p.parseBodyFields()
	if err != nil {
		return err
	}

	switch {
	case b.Type == "text":
		if err := p.expectSP(); err != nil {
			return err
		}
		b.Lines, err = p.parseNumber()
		if err != nil {
			return err
		}
		b.HasLines = true

	case b.Type == "message" && b.Subtype == "rfc822":
		if err := p.expectSP(); err != nil {
			return err
		}
		b.Envelope, err = p.parseEnvelope()
		if err != nil {
			return err
		}
		b.HasEnvelope = true
		if err := p.expectSP(); err != nil {
			return err
		}
		b.Body, err = p.parseBody()
		if err != nil {
			return err
		}
		if err := p.expectSP(); err != nil {
			return err
		}
		b.RFC822Lines, err = p.parseNumber()
		if err != nil {
			return err
		}
		b.HasRFC822Lines = true
	}

	// body-ext-1part = body-fld-md5 [SP body-fld-dsp [SP body-fld-lang
	//                  [SP body-fld-loc *(SP body-extension)]]]
	if p.cur() != ' ' {
		return nil
	}
	p.advance(1)
	b.MD5, b.HasMD5, err = p.parseNString()
	if err != nil {
		return err
	}

	if p.cur() != ' ' {
		return nil
	}
	p.advance(1)
	b.Disposition, err = p.parseBodyFldDsp()
	if err != nil {
		return err
	}

	if p.cur() != ' ' {
		return nil
	}
	p.advance(1)
	b.Lang, b.HasLang, err = p.parseBodyFldLang()
	if err != nil {
		return err
	}

	if p.cur() != ' ' {
		return nil
	}
	p.advance(1)
	b.Location, b.HasLocation, err = p.parseNString()
	if err != nil {
		return err
	}

	for p.cur() == ' ' {
		p.advance(1)
		ext, err := p.parseBodyExtension()
		if err != nil {
			return err
		}
		b.Extension = append(b.Extension, ext)
	}
	return nil
}

// parseBodyFields parses body-fields, RFC 3501 section 9:
//
//	body-fields     = body-fld-param SP body-fld-id SP body-fld-desc SP
//	                  body-fld-enc SP body-fld-octets
func (p *parser) parseBodyFields() (BodyFields, error) {
	var f BodyFields
	var err error
	f.Params, err = p.parseBodyFldParam()
	if err != nil {
		return f, err
	}
	if err := p.expectSP(); err != nil {
		return f, err
	}

	f.ID, f.HasID, err = p.parseNString()
	if err != nil {
		return f, err
	}
	if err := p.expectSP(); err != nil {
		return f, err
	}

	f.Description, f.HasDescription, err = p.parseNString()
	if err != nil {
		return f, err
	}
	if err := p.expectSP(); err != nil {
		return f, err
	}

	encRaw, err := p.parseString()
	if err != nil {
		return f, err
	}
	f.Encoding, err = toASCIILower(p, encRaw)
	if err != nil {
		return f, err
	}
	if err := p.expectSP(); err != nil {
		return f, err
	}

	f.Octets, err = p.parseNumber()
	if err != nil {
		return f, err
	}
	return f, nil
}

// parseBodyFldParam parses body-fld-param: NIL, or a parenthesised list
// of string/string pairs with ASCII-lowercased keys.
func (p *parser) parseBodyFldParam() (map[string]string, error) {
	if p.cur() == 'N' || p.cur() == 'n' {
		if p.at(1) == 'I' || p.at(1) == 'i' {
			if p.at(2) == 'L' || p.at(2) == 'l' {
				p.advance(3)
				return map[string]string{}, nil
			}
		}
	}
	if err := p.expectByte('('); err != nil {
		return nil, err
	}
	params := map[string]string{}
	for {
		if p.cur() == ')' {
			break
		}
		keyRaw, err := p.parseString()
		if err != nil {
			return nil, err
		}
		key, err := toASCIILower(p, keyRaw)
		if err != nil {
			return nil, err
		}
		if err := p.expectSP(); err != nil {
			return nil, err
		}
		valRaw, err := p.parseString()
		if err != nil {
			return nil, err
		}
		val, err := toASCII(p, valRaw)
		if err != nil {
			return nil, err
		}
		params[key] = val
		if p.cur() == ' ' {
			p.advance(1)
			continue
		}
		break
	}
	if err := p.expectByte(')'); err != nil {
		return nil, err
	}
	return params, nil
}

// parseBodyFldDsp parses body-fld-dsp: NIL, or "(" string SP
// body-fld-param ")".
func (p *parser) parseBodyFldDsp() (BodyDisposition, error) {
	var d BodyDisposition
	if p.cur() == 'N' || p.cur() == 'n' {
		if p.at(1) == 'I' || p.at(1) == 'i' {
			if p.at(2) == 'L' || p.at(2) == 'l' {
				p.advance(3)
				return d, nil
			}
		}
	}
	if err := p.expectByte('('); err != nil {
		return d, err
	}
	typeRaw, err := p.parseString()
	if err != nil {
		return d, err
	}
	d.Type, err = toASCIILower(p, typeRaw)
	if err != nil {
		return d, err
	}
	if err := p.expectSP(); err != nil {
		return d, err
	}
	d.Params, err = p.parseBodyFldParam()
	if err != nil {
		return d, err
	}
	if err := p.expectByte(')'); err != nil {
		return d, err
	}
	d.Present = true
	return d, nil
}

// parseBodyFldLang parses body-fld-lang: nstring (wrapped as a
// one-element sequence when present), or a parenthesised list of
// strings.
func (p *parser) parseBodyFldLang() ([]string, bool, error) {
	if p.cur() == '(' {
		p.advance(1)
		var langs []string
		for {
			raw, err := p.parseString()
			if err != nil {
				return nil, false, err
			}
			s, err := toASCII(p, raw)
			if err != nil {
				return nil, false, err
			}
			langs = append(langs, s)
			if p.cur() == ' ' {
				p.advance(1)
				continue
			}
			break
		}
		if err := p.expectByte(')'); err != nil {
			return nil, false, err
		}
		return langs, true, nil
	}

	raw, present, err := p.parseNString()
	if err != nil {
		return nil, false, err
	}
	if !present {
		return nil, false, nil
	}
	s, err := toASCII(p, raw)
	if err != nil {
		return nil, false, err
	}
	return []string{s}, true, nil
}

// parseBodyExtension parses one body-extension element, RFC 3501 section
// 9:
//
//	body-extension  = nstring / number /
//	                  "(" body-extension *(SP body-extension) ")"
func (p *parser) parseBodyExtension() (BodyExtension, error) {
	var e BodyExtension
	switch {
	case p.cur() == '(':
		p.advance(1)
		for {
			child, err := p.parseBodyExtension()
			if err != nil {
				return e, err
			}
			e.List = append(e.List, child)
			if p.cur() == ' ' {
				p.advance(1)
				continue
			}
			break
		}
		if err := p.expectByte(')'); err != nil {
			return e, err
		}
		return e, nil

	case isDigit(p.cur()):
		n, err := p.parseNumber()
		if err != nil {
			return e, err
		}
		e.IsNum = true
		e.Num = n
		return e, nil

	default:
		v, present, err := p.parseNString()
		if err != nil {
			return e, err
		}
		e.HasStr = present
		e.Str = v
		return e, nil
	}
}
