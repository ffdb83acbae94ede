// Package qoi implements the QOI ("Quite OK Image") lossless image
// format: encoding of raw 8-bit RGB or RGBA pixel buffers into the QOI
// byte stream, and decoding back to raw pixels.
//
// Original format by Dominic Szablewski - https://phoboslab.org
//
// -- LICENSE: The MIT License(MIT)
//
// Copyright(c) 2021 Dominic Szablewski
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files(the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and / or sell copies
// of the Software, and to permit persons to whom the Software is furnished to do
// so, subject to the following conditions :
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// This implementation targets the frozen QOI format: a 14-byte header,
// an 8-byte end marker and six chunk tags (INDEX, DIFF, LUMA, RUN,
// RGB, RGBA).
package qoi
