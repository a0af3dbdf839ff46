package samples

// Smits basis spectra on a 5 nm grid from 380 to 720 nm.
//
// The reflectance set is bounded to [0, 1] with a flat white. The
// illumination set is referenced to D65 with white normalized to unit
// luminance. Both sets are fitted so that each primary projects exactly
// onto its sRGB target when averaged over 64 bins of [380, 720) nm.
const (
	smitsMin   = 380
	smitsStep  = 5
	smitsCount = 69
)

var smitsReflectanceData = smitsData{
	white: [smitsCount]float64{
		1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000,
		1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000,
		1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000,
		1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000,
		1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000,
		1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000,
		1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000,
		1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000,
		1.000000, 1.000000, 1.000000, 1.000000, 1.000000,
	},
	cyan: [smitsCount]float64{
		0.971771, 0.971795, 0.971496, 0.970307, 0.967642, 0.963512, 0.958502, 0.953392,
		0.949046, 0.946466, 0.946957, 0.951975, 0.961430, 0.974082, 0.987179, 0.996803,
		1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000,
		1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000,
		1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 0.937707,
		0.817518, 0.664067, 0.501281, 0.348317, 0.221323, 0.131950, 0.074756, 0.038782,
		0.016245, 0.003803, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000,
		0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000081, 0.000185,
		0.000255, 0.000272, 0.000242, 0.000182, 0.000106,
	},
	magenta: [smitsCount]float64{
		1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000,
		1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000,
		1.000000, 0.985140, 0.921300, 0.816883, 0.690472, 0.557707, 0.429486, 0.314453,
		0.220577, 0.151179, 0.098602, 0.056567, 0.024143, 0.004618, 0.000000, 0.000000,
		0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.021313, 0.082090, 0.179583,
		0.299309, 0.427996, 0.555603, 0.672914, 0.769525, 0.836676, 0.880124, 0.910387,
		0.935131, 0.957623, 0.977458, 0.991975, 0.998667, 1.000000, 1.000000, 1.000000,
		1.000000, 1.000000, 0.999707, 0.999183, 0.998549, 0.997892, 0.997261, 0.996693,
		0.996236, 0.995943, 0.995819, 0.995795, 0.995807,
	},
	yellow: [smitsCount]float64{
		0.000020, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000,
		0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000902, 0.007927, 0.023369,
		0.050768, 0.096151, 0.164568, 0.248841, 0.340627, 0.433966, 0.525028, 0.610725,
		0.688062, 0.755889, 0.817532, 0.875232, 0.927781, 0.970106, 0.995120, 1.000000,
		1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000,
		1.000000, 1.000000, 1.000000, 0.998861, 0.995018, 0.988573, 0.980779, 0.972895,
		0.965701, 0.959641, 0.955145, 0.952815, 0.953111, 0.955127, 0.957869, 0.960701,
		0.963358, 0.965837, 0.968263, 0.970746, 0.973267, 0.975776, 0.978204, 0.980432,
		0.982267, 0.983482, 0.984056, 0.984243, 0.984291,
	},
	red: [smitsCount]float64{
		0.101828, 0.101506, 0.100808, 0.099045, 0.095495, 0.090243, 0.083862, 0.076691,
		0.068842, 0.060422, 0.051554, 0.042077, 0.031457, 0.019671, 0.008511, 0.001240,
		0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000,
		0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000,
		0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.063952,
		0.184595, 0.336943, 0.497748, 0.648828, 0.775018, 0.865327, 0.924708, 0.963014,
		0.986798, 0.998493, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000,
		1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000,
		1.000000, 1.000000, 1.000000, 1.000000, 1.000000,
	},
	green: [smitsCount]float64{
		0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000,
		0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000,
		0.000000, 0.011715, 0.074217, 0.179876, 0.309290, 0.445739, 0.577416, 0.694901,
		0.789543, 0.857770, 0.907941, 0.947200, 0.977269, 0.995486, 1.000000, 1.000000,
		1.000000, 1.000000, 1.000000, 1.000000, 0.998048, 0.971417, 0.907540, 0.810280,
		0.693185, 0.568303, 0.444726, 0.330974, 0.236853, 0.170679, 0.126963, 0.095671,
		0.069482, 0.045298, 0.023647, 0.007478, 0.000000, 0.000000, 0.000000, 0.000000,
		0.000000, 0.000000, 0.000211, 0.000561, 0.000963, 0.001365, 0.001742, 0.002075,
		0.002341, 0.002508, 0.002574, 0.002579, 0.002563,
	},
	blue: [smitsCount]float64{
		1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000,
		1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 0.999187, 0.992290, 0.976971,
		0.949643, 0.904217, 0.835594, 0.751000, 0.658839, 0.565126, 0.473753, 0.387892,
		0.310638, 0.243183, 0.182099, 0.124998, 0.072914, 0.030739, 0.005440, 0.000000,
		0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000,
		0.000000, 0.000000, 0.000000, 0.001310, 0.005109, 0.011166, 0.018291, 0.025344,
		0.031674, 0.037016, 0.041239, 0.044173, 0.045710, 0.046395, 0.046781, 0.047205,
		0.047765, 0.048376, 0.048852, 0.049066, 0.049125, 0.049150, 0.049205, 0.049301,
		0.049413, 0.049504, 0.049558, 0.049587, 0.049607,
	},
}

var smitsIlluminationData = smitsData{
	white: [smitsCount]float64{
		0.479560, 0.538350, 0.610121, 0.703251, 0.797457, 0.868304, 0.911188, 0.928014,
		0.927862, 0.923540, 0.936648, 0.982745, 1.047806, 1.111216, 1.159253, 1.184085,
		1.190432, 1.185141, 1.175985, 1.166774, 1.154395, 1.136028, 1.117935, 1.106579,
		1.099606, 1.092820, 1.084967, 1.077130, 1.072659, 1.073394, 1.074237, 1.070069,
		1.062667, 1.054509, 1.044224, 1.029832, 1.013073, 0.996486, 0.981674, 0.968460,
		0.953166, 0.933976, 0.917338, 0.909728, 0.908125, 0.907252, 0.903794, 0.895846,
		0.883633, 0.868645, 0.854897, 0.845194, 0.836769, 0.827081, 0.818974, 0.816143,
		0.817828, 0.820628, 0.818087, 0.804456, 0.781155, 0.753462, 0.732044, 0.725138,
		0.727598, 0.729118, 0.717772, 0.686179, 0.644106,
	},
	cyan: [smitsCount]float64{
		0.458122, 0.531135, 0.607914, 0.688031, 0.763328, 0.823092, 0.861186, 0.878741,
		0.884024, 0.889996, 0.909938, 0.950795, 1.007798, 1.069024, 1.122454, 1.160532,
		1.181591, 1.187908, 1.183273, 1.172176, 1.157471, 1.141273, 1.126145, 1.114093,
		1.105277, 1.098692, 1.093588, 1.090071, 1.088590, 1.088791, 1.089085, 1.087942,
		1.085086, 1.080776, 1.074280, 1.062642, 1.039418, 0.993869, 0.914699, 0.804959,
		0.677991, 0.546284, 0.419735, 0.306968, 0.216848, 0.156399, 0.118749, 0.092996,
		0.071583, 0.051454, 0.032982, 0.018426, 0.009922, 0.005858, 0.004147, 0.003358,
		0.002801, 0.002258, 0.001723, 0.001245, 0.000857, 0.000568, 0.000366, 0.000231,
		0.000144, 0.000089, 0.000053, 0.000028, 0.000007,
	},
	magenta: [smitsCount]float64{
		0.471318, 0.546621, 0.626077, 0.709790, 0.790059, 0.856229, 0.901964, 0.928147,
		0.942519, 0.956802, 0.982151, 1.023244, 1.075567, 1.128515, 1.170257, 1.190266,
		1.179006, 1.126394, 1.026196, 0.894744, 0.749218, 0.602174, 0.463070, 0.340442,
		0.242331, 0.171544, 0.118680, 0.075533, 0.039420, 0.012805, 0.000000, 0.000000,
		0.000000, 0.000000, 0.000000, 0.000000, 0.000901, 0.025096, 0.085171, 0.176626,
		0.285164, 0.398854, 0.510075, 0.612323, 0.696796, 0.754626, 0.789401, 0.809389,
		0.821372, 0.829387, 0.834926, 0.837184, 0.834509, 0.828978, 0.823668, 0.820623,
		0.819449, 0.817382, 0.810689, 0.797070, 0.777679, 0.756875, 0.740063, 0.730056,
		0.724603, 0.717751, 0.703606, 0.680404, 0.651948,
	},
	yellow: [smitsCount]float64{
		0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000,
		0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.003835, 0.015252, 0.035332,
		0.067476, 0.118618, 0.194698, 0.287042, 0.385484, 0.482988, 0.575826, 0.661494,
		0.737062, 0.801230, 0.858159, 0.912172, 0.965237, 1.015412, 1.056573, 1.081328,
		1.087926, 1.081767, 1.068087, 1.050277, 1.030576, 1.010480, 0.990666, 0.971008,
		0.951199, 0.932009, 0.915542, 0.903309, 0.894322, 0.885794, 0.875469, 0.862291,
		0.846580, 0.829884, 0.814419, 0.802027, 0.793403, 0.787936, 0.785489, 0.785968,
		0.788044, 0.788851, 0.784926, 0.774219, 0.757842, 0.739986, 0.725867, 0.718152,
		0.714478, 0.708808, 0.695328, 0.672544, 0.644442,
	},
	red: [smitsCount]float64{
		0.048196, 0.055567, 0.063026, 0.069928, 0.074737, 0.076258, 0.074319, 0.069431,
		0.062547, 0.054808, 0.047140, 0.039689, 0.031709, 0.022494, 0.012645, 0.004279,
		0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000,
		0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000,
		0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.069648,
		0.185295, 0.320901, 0.458407, 0.585598, 0.691170, 0.765396, 0.812102, 0.840195,
		0.857113, 0.867460, 0.873182, 0.873813, 0.868039, 0.858650, 0.849388, 0.842759,
		0.838602, 0.834227, 0.825870, 0.811141, 0.791056, 0.769885, 0.752989, 0.743118,
		0.737884, 0.731147, 0.716876, 0.693312, 0.664375,
	},
	green: [smitsCount]float64{
		0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000,
		0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000,
		0.000000, 0.020585, 0.096728, 0.216517, 0.357634, 0.502039, 0.638077, 0.756927,
		0.849879, 0.913400, 0.957851, 0.993922, 1.027697, 1.059447, 1.084482, 1.096716,
		1.094833, 1.083263, 1.065567, 1.041903, 1.008155, 0.955780, 0.875360, 0.769415,
		0.649155, 0.525226, 0.406269, 0.299907, 0.213919, 0.154429, 0.115448, 0.087483,
		0.063982, 0.042402, 0.023343, 0.009194, 0.002104, 0.000000, 0.000000, 0.000000,
		0.000000, 0.000169, 0.000393, 0.000643, 0.000893, 0.001133, 0.001360, 0.001569,
		0.001737, 0.001831, 0.001836, 0.001775, 0.001686,
	},
	blue: [smitsCount]float64{
		0.471282, 0.546577, 0.626044, 0.709838, 0.790345, 0.857030, 0.903659, 0.931081,
		0.946664, 0.961179, 0.984172, 1.018584, 1.059851, 1.098430, 1.124238, 1.129448,
		1.108676, 1.057328, 0.973466, 0.868911, 0.755289, 0.640807, 0.531240, 0.430866,
		0.342721, 0.267189, 0.199733, 0.137303, 0.080708, 0.034834, 0.006816, 0.000000,
		0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000, 0.000000,
		0.000000, 0.000000, 0.000000, 0.000000, 0.002516, 0.007883, 0.014769, 0.021730,
		0.027868, 0.032805, 0.036429, 0.038673, 0.039546, 0.039616, 0.039460, 0.039442,
		0.039636, 0.039860, 0.039793, 0.039224, 0.038280, 0.037262, 0.036476, 0.036064,
		0.035892, 0.035633, 0.034980, 0.033856, 0.032464,
	},
}
