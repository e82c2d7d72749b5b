package rust

import "text/template"

// The three emitted-code templates. Each is a fixed literal with named
// substitution holes; every hole is a prebuilt string so emission stays
// deterministic.

const bitfieldAccessorTemplate = `    pub fn {{.Name}}(&self) -> bool {
        self.bitfield_at_{{.Offset}} & {{.Mask}} != 0
    }

    pub fn set_{{.Name}}(&mut self, value: bool) {
        if value {
            self.bitfield_at_{{.Offset}} |= {{.Mask}};
        } else {
            self.bitfield_at_{{.Offset}} &= !{{.Mask}};
        }
    }

`

type bitfieldAccessorData struct {
	Name   string
	Offset int32
	Mask   string
}

const derefImplTemplate = `impl core::ops::Deref for {{.Child}} {
    type Target = {{.Parent}};

    fn deref(&self) -> &Self::Target {
        &self.base
    }
}

impl core::ops::DerefMut for {{.Child}} {
    fn deref_mut(&mut self) -> &mut Self::Target {
        &mut self.base
    }
}

`

type derefImplData struct {
	Child  string
	Parent string
}

const trampolineTemplate = `    pub unsafe fn {{.Name}}(&mut self, {{.Inputs}}){{.Outputs}}{
        #[repr(C)]
        struct Parameters { {{- .DeclareStructFields}}
        }

        let mut parameters = Parameters { {{- .InitStructFields}}
        };

        crate::process_event(
            self as *mut Self as *mut (),
            "{{.FullName}}\0".as_ptr(),
            &mut parameters as *mut Parameters as *mut (),
        );
{{- .ReturnValues}}
    }

`

type trampolineData struct {
	Name                string
	FullName            string
	Inputs              string
	Outputs             string
	DeclareStructFields string
	InitStructFields    string
	ReturnValues        string
}

var (
	bitfieldAccessorTmpl = template.Must(template.New("bitfield").Parse(bitfieldAccessorTemplate))
	derefImplTmpl        = template.Must(template.New("deref").Parse(derefImplTemplate))
	trampolineTmpl       = template.Must(template.New("trampoline").Parse(trampolineTemplate))
)
